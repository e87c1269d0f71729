// Package entity contains the core business objects of the project.
package entity

import "time"

// Client represents a customer who can place sales.
type Client struct {
	ID        int64      // Generated identifier.
	Name      string     // Full name, never empty.
	Email     string     // Contact e-mail.
	CPF       *string    // Brazilian taxpayer id, unique when present.
	BirthDate *time.Time // Date of birth, time part is always midnight UTC.
}
