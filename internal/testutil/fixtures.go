package testutil

import (
	"fmt"

	"github.com/meguinhazeromiseria/scraper-mega/internal/model"
)

// Lot returns a plausible scraped lot with the given title. The remaining
// fields get stable defaults so tests only spell out what they assert on.
func Lot(id, title string) model.Lot {
	return model.Lot{
		ID:     id,
		Source: "leilao-exemplo",
		Title:  title,
		URL:    fmt.Sprintf("https://leilao.example.com/lote/%s", id),
	}
}

// Lots builds a batch of lots from titles, with sequential ids.
func Lots(titles ...string) []model.Lot {
	lots := make([]model.Lot, len(titles))
	for i, title := range titles {
		lots[i] = Lot(fmt.Sprintf("lot-%03d", i+1), title)
	}
	return lots
}
