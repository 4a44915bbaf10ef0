package discord

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"
)

const (
	testGuildID = "111111111111111111"
	testUserID  = "222222222222222222"
	otherUserID = "333333333333333333"
)

// MockRoundTripper implements http.RoundTripper for intercepting Discord REST calls
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

// DiscordCall is one captured Discord REST request
type DiscordCall struct {
	Method string
	Path   string
	Body   []byte
}

type sentComponent struct {
	Type       discordgo.ComponentType `json:"type"`
	CustomID   string                  `json:"custom_id"`
	Label      string                  `json:"label"`
	Components []sentComponent         `json:"components"`
	Options    []struct {
		Value string `json:"value"`
	} `json:"options"`
}

// sentMessage is the subset of an outgoing message the tests inspect. discordgo
// cannot decode components back into its interface types.
type sentMessage struct {
	Content    string                    `json:"content"`
	Flags      discordgo.MessageFlags    `json:"flags"`
	Embeds     []*discordgo.MessageEmbed `json:"embeds"`
	Components []sentComponent           `json:"components"`
}

type sentCallback struct {
	Type discordgo.InteractionResponseType `json:"type"`
	Data *sentMessage                      `json:"data"`
}

// TestContext wires a fake engine API and a Discord session whose REST calls are captured
type TestContext struct {
	Server       *httptest.Server
	Mux          *http.ServeMux
	APIClient    *APIClient
	Session      *discordgo.Session
	DiscordMocks *MockRoundTripper

	mu    sync.Mutex
	calls []DiscordCall
}

func SetupTestContext(t *testing.T) *TestContext {
	t.Helper()

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)

	client := NewAPIClient(server.URL+APIPrefix, "test-api-key")
	client.retryDelay = time.Millisecond

	session, err := discordgo.New("Bot test-token")
	require.NoError(t, err)

	tc := &TestContext{
		Server:    server,
		Mux:       mux,
		APIClient: client,
		Session:   session,
	}

	tc.DiscordMocks = &MockRoundTripper{
		RoundTripFunc: func(req *http.Request) (*http.Response, error) {
			var body []byte
			if req.Body != nil {
				body, _ = io.ReadAll(req.Body)
			}
			tc.mu.Lock()
			tc.calls = append(tc.calls, DiscordCall{Method: req.Method, Path: req.URL.Path, Body: body})
			tc.mu.Unlock()
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewBufferString("{}")),
				Header:     make(http.Header),
			}, nil
		},
	}
	session.Client = &http.Client{Transport: tc.DiscordMocks}

	t.Cleanup(server.Close)
	return tc
}

// Calls returns the captured Discord REST calls in order
func (tc *TestContext) Calls() []DiscordCall {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	return append([]DiscordCall(nil), tc.calls...)
}

// Callbacks decodes every initial interaction response
func (tc *TestContext) Callbacks(t *testing.T) []sentCallback {
	t.Helper()
	var out []sentCallback
	for _, c := range tc.Calls() {
		if c.Method == http.MethodPost && strings.HasSuffix(c.Path, "/callback") {
			var cb sentCallback
			require.NoError(t, json.Unmarshal(c.Body, &cb))
			out = append(out, cb)
		}
	}
	return out
}

// LastEdit decodes the last edit of the original response
func (tc *TestContext) LastEdit(t *testing.T) *sentMessage {
	t.Helper()
	calls := tc.Calls()
	for i := len(calls) - 1; i >= 0; i-- {
		if calls[i].Method == http.MethodPatch {
			var m sentMessage
			require.NoError(t, json.Unmarshal(calls[i].Body, &m))
			return &m
		}
	}
	return nil
}

// Followups decodes every followup message
func (tc *TestContext) Followups(t *testing.T) []sentMessage {
	t.Helper()
	var out []sentMessage
	for _, c := range tc.Calls() {
		if c.Method == http.MethodPost && strings.Contains(c.Path, "/webhooks/") {
			var m sentMessage
			require.NoError(t, json.Unmarshal(c.Body, &m))
			out = append(out, m)
		}
	}
	return out
}

// WriteJSON writes a JSON success response
func WriteJSON(w http.ResponseWriter, data any) {
	WriteJSONStatus(w, http.StatusOK, data)
}

// WriteJSONStatus writes a JSON response with the given status
func WriteJSONStatus(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func commandInteraction(name string, options ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:      "interaction-id",
			AppID:   "app-id",
			Token:   "token",
			Type:    discordgo.InteractionApplicationCommand,
			GuildID: testGuildID,
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    name,
				Options: options,
			},
			Member: &discordgo.Member{
				User: &discordgo.User{ID: testUserID, Username: "Tester"},
			},
		},
	}
}

func componentInteraction(presser, customID string, values ...string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:      "interaction-id",
			AppID:   "app-id",
			Token:   "token",
			Type:    discordgo.InteractionMessageComponent,
			GuildID: testGuildID,
			Data: discordgo.MessageComponentInteractionData{
				CustomID: customID,
				Values:   values,
			},
			Member: &discordgo.Member{
				User: &discordgo.User{ID: presser, Username: "Presser"},
			},
		},
	}
}

// customIDs flattens the custom IDs of a component tree
func customIDs(components []sentComponent) []string {
	var ids []string
	for _, c := range components {
		if c.CustomID != "" {
			ids = append(ids, c.CustomID)
		}
		ids = append(ids, customIDs(c.Components)...)
	}
	return ids
}
