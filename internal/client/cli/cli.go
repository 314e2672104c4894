// Package cli реализует командный интерфейс клиента.
package cli

import (
	"fmt"

	"github.com/aemlabs/aemdash/internal/client/auth"
	"github.com/aemlabs/aemdash/internal/client/dashboard"
	"github.com/aemlabs/aemdash/internal/client/dashcache"
	"github.com/aemlabs/aemdash/internal/client/iocli"
	"github.com/aemlabs/aemdash/internal/client/storage"
)

type Cli struct {
	io           iocli.IO
	authService  *auth.Service
	dashService  *dashboard.Service
	dashCache    *dashcache.Cache
	sessionStore storage.SessionStore
}

func New(io iocli.IO, authService *auth.Service, dashService *dashboard.Service, dashCache *dashcache.Cache, sessionStore storage.SessionStore) *Cli {
	return &Cli{
		io:           io,
		authService:  authService,
		dashService:  dashService,
		dashCache:    dashCache,
		sessionStore: sessionStore,
	}
}

func PrintUsage() {
	fmt.Println("aemdash client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  aemdash [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version          Show version information")
	fmt.Println("  --server URL       Server URL (default: http://localhost:8080)")
	fmt.Println("  --db PATH          Path to local database (default: aemdash-client.db)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  login                    Login to server (works offline with cached credentials)")
	fmt.Println("  dashboard [--watch]      Load and render the dashboard")
	fmt.Println("  logout [--wipe]          Logout; --wipe removes all offline data,")
	fmt.Println("         [--wipe-credentials]  --wipe-credentials only cached credentials")
	fmt.Println("  status                   Show session and offline cache state")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  aemdash login")
	fmt.Println("  aemdash dashboard")
	fmt.Println("  aemdash dashboard --watch --interval 30s")
	fmt.Println("  aemdash logout --wipe")
}
