package domain

import "time"

type User struct {
	ID           int32     `json:"id"`
	Username     string    `json:"usuario"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"nome"`
	CreatedOn    time.Time `json:"created_on"`
}

type LoginResult struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	User    string `json:"usuario,omitempty"`
}
