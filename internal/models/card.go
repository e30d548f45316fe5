package models

// Card is a single card object as returned by the ygoprodeck v7 API.
// ATK and DEF are pointers because 0 is a legal value and absence means
// the card is not a monster.
type Card struct {
	ID          int          `json:"id"`
	Name        string       `json:"name"`
	Type        string       `json:"type"`
	Desc        string       `json:"desc"`
	ATK         *int         `json:"atk,omitempty"`
	DEF         *int         `json:"def,omitempty"`
	Level       int          `json:"level,omitempty"`
	Attribute   string       `json:"attribute,omitempty"`
	Race        string       `json:"race,omitempty"`
	Archetype   string       `json:"archetype,omitempty"`
	LinkVal     int          `json:"linkval,omitempty"`
	LinkMarkers []string     `json:"linkmarkers,omitempty"`
	BanlistInfo *BanlistInfo `json:"banlist_info,omitempty"`
	CardImages  []CardImage  `json:"card_images,omitempty"`
	URL         string       `json:"ygoprodeck_url,omitempty"`
}

type BanlistInfo struct {
	BanOCG string `json:"ban_ocg,omitempty"`
	BanTCG string `json:"ban_tcg,omitempty"`
}

type CardImage struct {
	ID              int    `json:"id"`
	ImageURL        string `json:"image_url"`
	ImageURLSmall   string `json:"image_url_small"`
	ImageURLCropped string `json:"image_url_cropped"`
}

// BanOCG returns the OCG ban-list status, defaulting to "Unlimited".
func (c *Card) BanOCG() string {
	if c.BanlistInfo != nil && c.BanlistInfo.BanOCG != "" {
		return c.BanlistInfo.BanOCG
	}
	return "Unlimited"
}

// BanTCG returns the TCG ban-list status, defaulting to "Unlimited".
func (c *Card) BanTCG() string {
	if c.BanlistInfo != nil && c.BanlistInfo.BanTCG != "" {
		return c.BanlistInfo.BanTCG
	}
	return "Unlimited"
}

func (c *Card) ImageURL() string {
	if len(c.CardImages) > 0 {
		return c.CardImages[0].ImageURL
	}
	return ""
}

func (c *Card) ImageURLSmall() string {
	if len(c.CardImages) > 0 {
		return c.CardImages[0].ImageURLSmall
	}
	return ""
}

func (c *Card) ImageURLCropped() string {
	if len(c.CardImages) > 0 {
		return c.CardImages[0].ImageURLCropped
	}
	return ""
}

// CardSearchResult holds a capped partial-name search along with the
// total number of matches the API reported before the cap.
type CardSearchResult struct {
	Cards      []Card `json:"cards"`
	TotalCount int    `json:"total_count"`
	HasMore    bool   `json:"has_more"`
}
