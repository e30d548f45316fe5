package models

import "testing"

func TestBanStatusDefaults(t *testing.T) {
	card := Card{Name: "Kuriboh"}
	if card.BanOCG() != "Unlimited" || card.BanTCG() != "Unlimited" {
		t.Errorf("Missing banlist info should read Unlimited, got %s/%s", card.BanOCG(), card.BanTCG())
	}

	card.BanlistInfo = &BanlistInfo{BanOCG: "Forbidden"}
	if card.BanOCG() != "Forbidden" {
		t.Errorf("BanOCG() = %q, want Forbidden", card.BanOCG())
	}
	if card.BanTCG() != "Unlimited" {
		t.Errorf("BanTCG() = %q, want the Unlimited default", card.BanTCG())
	}
}

func TestImageURLFallsBackToEmpty(t *testing.T) {
	card := Card{Name: "Kuriboh"}
	if card.ImageURL() != "" || card.ImageURLCropped() != "" {
		t.Error("Card without images should render empty URLs")
	}

	card.CardImages = []CardImage{{
		ImageURL:        "https://images.ygoprodeck.com/images/cards/1.jpg",
		ImageURLCropped: "https://images.ygoprodeck.com/images/cards_cropped/1.jpg",
	}}
	if card.ImageURL() != "https://images.ygoprodeck.com/images/cards/1.jpg" {
		t.Errorf("ImageURL() = %q", card.ImageURL())
	}
	if card.ImageURLCropped() != "https://images.ygoprodeck.com/images/cards_cropped/1.jpg" {
		t.Errorf("ImageURLCropped() = %q", card.ImageURLCropped())
	}
}
