package eth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/clawdcat/mintboard/config"
	"github.com/stretchr/testify/require"
)

// newBlockNumberServer answers eth_blockNumber slowly and counts the calls.
func newBlockNumberServer(t *testing.T, calls *atomic.Int32) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID     json.RawMessage `json:"id"`
			Method string          `json:"method"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if req.Method == "eth_blockNumber" {
			calls.Add(1)
			time.Sleep(50 * time.Millisecond)
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"jsonrpc": "2.0",
			"id":      req.ID,
			"result":  "0x10",
		})
	}))
	t.Cleanup(srv.Close)

	return srv
}

func Test_defaultEthClient_ConcurrentFirstRequests(t *testing.T) {
	var calls atomic.Int32
	srv := newBlockNumberServer(t, &calls)

	client := NewEthClient(config.ChainConfigs{
		ID:   config.BaseChainID,
		Name: "Base",
		Rpcs: []string{srv.URL},
	}, 0).(*defaultEthClient)
	defer client.closeClients()

	start := make(chan struct{})
	var wg sync.WaitGroup
	rpcs := make([]string, 4)
	for i := range rpcs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, rpcs[i] = client.getHealthyClient(context.Background())
		}(i)
	}

	close(start)
	wg.Wait()

	require.Equal(t, int32(1), calls.Load())
	for _, rpc := range rpcs {
		require.Equal(t, srv.URL, rpc)
	}
}
