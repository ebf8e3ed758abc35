package model

import (
	"encoding/json"
	"time"
)

// Card stores a business card as a JSON payload. Slug is unique per user,
// ShortCode globally.
type Card struct {
	ID        uint   `gorm:"primarykey"`
	Slug      string `gorm:"uniqueIndex:idx_card_owner"`
	UserID    string `gorm:"uniqueIndex:idx_card_owner"`
	ShortCode string `gorm:"uniqueIndex"`
	Data      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Payload decodes the stored JSON.
func (c Card) Payload() (CardData, error) {
	var data CardData
	err := json.Unmarshal([]byte(c.Data), &data)
	return data, err
}

// Encode replaces the stored JSON with data.
func (c *Card) Encode(data CardData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	c.Data = string(raw)
	return nil
}

// CardData is the payload a card holder edits.
type CardData struct {
	Personal CardPersonal `json:"personal"`
	Contact  CardContact  `json:"contact"`
	Social   CardSocial   `json:"social"`
	Theme    CardTheme    `json:"theme"`
	Images   CardImages   `json:"images"`
	Links    []CardLink   `json:"links"`
	Privacy  CardPrivacy  `json:"privacy"`
}

type CardPersonal struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Title     string `json:"title"`
	Company   string `json:"company"`
	Bio       string `json:"bio"`
}

type CardContact struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Website string `json:"website"`
	Address string `json:"address"`
}

type CardSocial struct {
	LinkedIn  string `json:"linkedin"`
	Twitter   string `json:"twitter"`
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
}

type CardTheme struct {
	Color string `json:"color"`
	Style string `json:"style"`
}

type CardImages struct {
	Avatar string `json:"avatar"`
	Banner string `json:"banner"`
}

type CardLink struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
	Icon  string `json:"icon"`
}

type CardPrivacy struct {
	RequireInteraction    bool `json:"requireInteraction"`
	ClientSideObfuscation bool `json:"clientSideObfuscation"`
	BlockRobots           bool `json:"blockRobots"`
}

// DefaultPrivacy is applied when privacy customisation is locked and no
// earlier choice exists.
func DefaultPrivacy() CardPrivacy {
	return CardPrivacy{
		RequireInteraction:    true,
		ClientSideObfuscation: false,
		BlockRobots:           false,
	}
}
