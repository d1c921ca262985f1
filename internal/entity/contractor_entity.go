package entity

import (
	"errors"
	"strings"
)

var ErrInvalidCISFlag = errors.New("invalid is_cis_registered value")

const ContractorStatusApproved = "approved"

type Contractor struct {
	Id            uint
	TelegramId    string
	FirstName     string
	LastName      string
	Email         string
	Username      string
	AdminPayRate  *float64
	CISRegistered bool
	Status        string
}

// DisplayName is the "first last" name the legacy tables use as a join key.
func (c *Contractor) DisplayName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}
