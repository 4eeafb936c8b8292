package model

import (
	"time"

	"github.com/clawdcat/mintboard/config"
	"github.com/clawdcat/mintboard/internal/entity"
)

const DefaultTimeLayout string = time.RFC3339Nano

func ConvertMintTransaction(tx *entity.MintTransaction, explorerURL string) MintTransaction {
	if tx == nil {
		return MintTransaction{}
	}

	return MintTransaction{
		ID:          tx.ID,
		ChainID:     tx.ChainID,
		TxHash:      tx.TxHash,
		Contract:    tx.Contract,
		Account:     tx.Account,
		Amount:      tx.Amount,
		Status:      string(tx.Status),
		ExplorerURL: explorerURL,
		CreatedAt:   tx.CreatedAt.Format(DefaultTimeLayout),
	}
}

func ConvertPage(cfg config.PageConfigs) Page {
	page := Page{
		Badge:         cfg.Badge,
		HeroTitle:     cfg.HeroTitle,
		HeroHighlight: cfg.HeroHighlight,
		HeroText:      cfg.HeroText,
		MintTitle:     cfg.MintTitle,
		MintSubtitle:  cfg.MintSubtitle,
		Features:      []Feature{},
		Socials:       []SocialLink{},
	}

	for _, f := range cfg.Features {
		page.Features = append(page.Features, Feature{Icon: f.Icon, Title: f.Title, Description: f.Description})
	}

	for _, s := range cfg.Socials {
		page.Socials = append(page.Socials, SocialLink{Label: s.Label, URL: s.URL})
	}

	return page
}
