package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/clawdcat/mintboard/internal/model"
	"github.com/stretchr/testify/require"
)

func broadcastForm(t *testing.T, p *statusPrinter, form model.MintForm) {
	b, err := json.Marshal(model.MintCard{Connected: true, Form: &form})
	require.NoError(t, err)
	p.BroadcastByChannel("mintcard", b)
}

func Test_statusPrinter(t *testing.T) {
	var out bytes.Buffer
	p := newStatusPrinter(&out)

	broadcastForm(t, p, model.MintForm{Status: "idle"})
	broadcastForm(t, p, model.MintForm{Status: "pending"})
	broadcastForm(t, p, model.MintForm{Status: "pending"})
	broadcastForm(t, p, model.MintForm{
		Status:        "pending",
		StatusMessage: "Transaction pending...",
		ExplorerURL:   "https://basescan.org/tx/0x01",
	})
	broadcastForm(t, p, model.MintForm{Status: "success", StatusMessage: "Transaction confirmed! Your tokens have been minted."})

	select {
	case <-p.idle:
		t.Fatal("idle closed before the form reset")
	default:
	}

	broadcastForm(t, p, model.MintForm{Status: "idle"})
	<-p.idle

	require.Equal(t, "idle\n"+
		"pending\n"+
		"pending: Transaction pending... https://basescan.org/tx/0x01\n"+
		"success: Transaction confirmed! Your tokens have been minted.\n"+
		"idle\n", out.String())
}
