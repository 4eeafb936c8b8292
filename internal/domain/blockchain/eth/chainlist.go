package eth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/net/html"
)

const DefaultChainlistURL = "https://chainlist.org"

type chainlistData struct {
	Props struct {
		PageProps struct {
			Chain struct {
				Rpc []struct {
					URL string `json:"url"`
				} `json:"rpc"`
			} `json:"chain"`
		} `json:"pageProps"`
	} `json:"props"`
}

// FetchChainlistRpcs downloads the chainlist page of the given chain and
// returns the public rpcs it lists.
func FetchChainlistRpcs(ctx context.Context, baseURL string, chainID int64) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, RpcTimeOut)
	defer cancel()

	url := fmt.Sprintf("%s/chain/%d", strings.TrimRight(baseURL, "/"), chainID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return ParseChainlistRpcs(string(body))
}

// ParseChainlistRpcs extracts the http rpcs from the embedded json data of a
// chainlist chain page. Urls with unresolved api key placeholders are skipped.
func ParseChainlistRpcs(page string) ([]string, error) {
	tokenizer := html.NewTokenizer(strings.NewReader(page))
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			if errors.Is(tokenizer.Err(), io.EOF) {
				return nil, errors.New("chain data not found in page")
			}
			return nil, tokenizer.Err()

		case html.TextToken:
			text := strings.TrimSpace(string(tokenizer.Text()))
			if !strings.HasPrefix(text, "{") {
				continue
			}

			var data chainlistData
			if err := json.Unmarshal([]byte(text), &data); err != nil {
				continue
			}

			rpcs := []string{}
			for _, rpc := range data.Props.PageProps.Chain.Rpc {
				if strings.Contains(rpc.URL, "${") {
					continue
				}

				if strings.HasPrefix(rpc.URL, "https://") || strings.HasPrefix(rpc.URL, "http://") {
					rpcs = append(rpcs, rpc.URL)
				}
			}

			return rpcs, nil
		}
	}
}
