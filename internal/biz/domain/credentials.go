package domain

import "time"

// Profile is a snapshot of the connected account, captured at connect time.
type Profile struct {
	Handle      string
	DisplayName string
	Followers   int
	PostCount   int
}

// SessionCredentials holds the provider access credentials for one session.
// Created at handshake completion, overwritten on reconnect, and owned
// exclusively by the session.
type SessionCredentials struct {
	SessionID    string
	AccessToken  string
	AccessSecret string
	Profile      Profile
	ConnectedAt  time.Time
}
