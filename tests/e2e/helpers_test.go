//go:build e2e

package e2e_test

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/alumni-sante/sondage-backend/internal/adapter/sheets"
	authpkg "github.com/alumni-sante/sondage-backend/internal/auth"
	"github.com/alumni-sante/sondage-backend/internal/cache"
	"github.com/alumni-sante/sondage-backend/internal/config"
	authsvc "github.com/alumni-sante/sondage-backend/internal/service/auth"
	"github.com/alumni-sante/sondage-backend/internal/service/results"
	"github.com/alumni-sante/sondage-backend/internal/transport/middleware"
	"github.com/alumni-sante/sondage-backend/internal/transport/rest"
)

const (
	testPassword  = "le-mot-de-passe-partagé"
	testWhitelist = "alice@example.org"
)

// ---------------------------------------------------------------------------
// Fake Google Sheets backend: an OAuth token endpoint plus a values API
// serving a fixed survey sheet and whitelist.
// ---------------------------------------------------------------------------

var sheetValues = map[string]string{
	"responses": `{"values":[
		["Horodateur","Année de diplôme","Sexe","Département actuel de travail","Secteur d’activité","Type de structure","Poste actuel","Nombre d’années d’expérience (depuis le diplôme)","Salaire brut annuel actuel (hors primes)","Primes / variable annuel","Avantages particuliers (optionnel)","Un conseil, un retour d’expérience, une anecdote ? (facultatif)"],
		["01/06/2024","2019","Femme","Haute-Garonne","ESN spécialisée santé","PME","Développeuse web","4-6","35-40k€","2-4k€","Télétravail 3j","Négociez dès l'embauche."],
		["01/06/2024","2020","Homme","Paris","Hôpital public","Hôpital","Ingénieur data","2-4","30-35k€","","",""],
		["01/06/2024","2015","Homme","Ille-et-Vilaine","Editeur de logiciel","Grande entreprise","Chef de projet","10+","50-55k€","4-6k€","Intéressement",""],
		["01/06/2024","2021","Femme","Rhône","ESN","PME","Développeuse fullstack","0-2","30-35k€","","",""]
	]}`,
	"whitelist": `{"values":[["Alice@Example.org"],["bob@example.org"]]}`,
}

func newSheetsBackend(t *testing.T) (tokenURL, apiURL string, key string) {
	t.Helper()

	rsaKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKCS8PrivateKey(rsaKey)
	require.NoError(t, err)
	pemKey := string(pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}))

	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"e2e-access-token","expires_in":3600}`))
	}))
	t.Cleanup(tokenSrv.Close)

	apiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if strings.Contains(r.URL.RawPath+r.URL.Path, "Whitelist") {
			io.WriteString(w, sheetValues["whitelist"])
			return
		}
		io.WriteString(w, sheetValues["responses"])
	}))
	t.Cleanup(apiSrv.Close)

	return tokenSrv.URL, apiSrv.URL, pemKey
}

// ---------------------------------------------------------------------------
// testServer wraps the full HTTP stack (handlers, middleware, services,
// memory cache, fake Sheets) behind an httptest server.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	tokenURL, apiURL, pemKey := newSheetsBackend(t)

	sheetsCfg := config.SheetsConfig{
		SpreadsheetID:  "e2e-sheet",
		ClientEmail:    "svc@project.iam.gserviceaccount.com",
		PrivateKey:     pemKey,
		ResponseRange:  "Réponses au formulaire 1",
		WhitelistRange: "Whitelist!A:A",
		Timeout:        5 * time.Second,
	}
	sheetsClient, err := sheets.NewClientWithURLs(sheetsCfg, tokenURL, apiURL, logger)
	require.NoError(t, err)

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	authCfg := config.AuthConfig{
		JWTSecret:      "e2e-secret-at-least-32-chars-long!!!",
		JWTIssuer:      "sondage-e2e",
		SessionTTL:     time.Hour,
		PasswordHash:   string(hash),
		LoginRateLimit: 100,
	}

	snapshotCache := cache.NewMemory(cache.DefaultOptions())
	t.Cleanup(func() { snapshotCache.Close() })

	jwtMgr := authpkg.NewJWTManager(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.SessionTTL)
	authService := authsvc.NewService(logger, sheetsClient, jwtMgr, authCfg)
	resultsService := results.NewService(logger, sheetsClient, snapshotCache, time.Hour)

	authHandler := rest.NewAuthHandler(authService, logger)
	resultsHandler := rest.NewResultsHandler(resultsService, logger)
	dataHandler := rest.NewDataHandler(resultsService, logger)
	healthHandler := rest.NewHealthHandler(nil, "e2e")

	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)

	requireAuth := middleware.RequireAuth(authService)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /live", healthHandler.Live)
	mux.HandleFunc("GET /ready", healthHandler.Ready)
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.Handle("POST /api/login", limiter.Limit(authCfg.LoginRateLimit)(http.HandlerFunc(authHandler.Login)))
	mux.Handle("POST /api/results", requireAuth(http.HandlerFunc(resultsHandler.Results)))
	mux.Handle("GET /api/data", requireAuth(http.HandlerFunc(dataHandler.Data)))

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type,If-None-Match",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
	)(mux)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client()}
}

// ---------------------------------------------------------------------------
// Request helpers.
// ---------------------------------------------------------------------------

func (ts *testServer) postJSON(t *testing.T, path, token, body string, headers map[string]string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, ts.URL+path, bytes.NewReader([]byte(body)))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	return resp
}

func (ts *testServer) get(t *testing.T, path, token string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	return resp
}

func jsonDecode(resp *http.Response, v any) error {
	return json.NewDecoder(resp.Body).Decode(v)
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	var result map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result
}

// login performs a whitelisted login and returns the session token.
func (ts *testServer) login(t *testing.T) string {
	t.Helper()

	resp := ts.postJSON(t, "/api/login", "",
		`{"email":"`+testWhitelist+`","password":"`+testPassword+`"}`, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	token, ok := body["token"].(string)
	require.True(t, ok, "expected token in login response")
	require.NotEmpty(t, token)
	return token
}
