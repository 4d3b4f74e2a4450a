package photo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/orgball2608/event-poster-api/pkg/config"
	apperrors "github.com/orgball2608/event-poster-api/pkg/errors"
	"github.com/orgball2608/event-poster-api/pkg/logger"
	"go.uber.org/fx"
)

// Local references live under these path prefixes; anything else is
// treated as a Telegram file identifier and served through the proxy.
var defaultLocalPrefixes = []string{"/posters/", "posters/", "/uploads/", "uploads/"}

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

// Resolver classifies image references and proxies foreign ones
// through the Telegram Bot API (getFile, then a file download).
type Resolver struct {
	token        string
	prefixes     []string
	client       *http.Client
	logger       logger.Logger
	apiEndpoint  string
	fileEndpoint string

	mu  sync.Mutex
	bot *tgbotapi.BotAPI
}

func New(opts Opts) *Resolver {
	return &Resolver{
		token:        opts.Config.Telegram.Token,
		prefixes:     localPrefixes(opts.Config.Photo.LocalPrefixes),
		client:       &http.Client{},
		logger:       opts.Logger,
		apiEndpoint:  tgbotapi.APIEndpoint,
		fileEndpoint: tgbotapi.FileEndpoint,
	}
}

// localPrefixes parses the comma-separated prefix list from the
// configuration, falling back to the defaults when it is unset.
func localPrefixes(raw string) []string {
	var prefixes []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		prefixes = append(prefixes, part)
	}
	if len(prefixes) == 0 {
		return defaultLocalPrefixes
	}
	return prefixes
}

// IsLocal reports whether ref points at this service's own storage.
func (r *Resolver) IsLocal(ref string) bool {
	for _, prefix := range r.prefixes {
		if strings.HasPrefix(ref, prefix) {
			return true
		}
	}
	return false
}

// ResolveURL turns an image reference into a client-facing URL: local
// references are normalized to a single leading slash, foreign file
// identifiers are routed through the photo proxy.
func (r *Resolver) ResolveURL(ref string) string {
	if r.IsLocal(ref) {
		return "/" + strings.TrimLeft(ref, "/")
	}
	return "/photo/" + ref
}

// Fetch resolves fileID against the Telegram Bot API and downloads
// the image bytes. The download request is bound to ctx so an
// abandoned client aborts the in-flight proxy call.
func (r *Resolver) Fetch(ctx context.Context, fileID string) ([]byte, error) {
	if r.token == "" {
		return nil, apperrors.Wrap(apperrors.ErrServiceUnavailable, "bot token not configured")
	}

	bot, err := r.botAPI()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrServiceUnavailable, "telegram api unavailable")
	}

	file, err := bot.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		var apiErr *tgbotapi.Error
		if errors.As(err, &apiErr) {
			return nil, apperrors.Wrap(apperrors.ErrNotFound, "file not found")
		}
		return nil, apperrors.Internal(err, "failed to resolve file path")
	}

	url := fmt.Sprintf(r.fileEndpoint, r.token, file.FilePath)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperrors.Internal(err, "failed to build download request")
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, apperrors.Internal(err, "failed to download photo")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.Wrap(apperrors.ErrNotFound, "failed to download photo")
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.Internal(err, "failed to read photo data")
	}

	return data, nil
}

// botAPI creates the bot client on first use. NewBotAPIWithClient
// performs a getMe round-trip, so constructing it eagerly would make
// process startup depend on Telegram being reachable.
func (r *Resolver) botAPI() (*tgbotapi.BotAPI, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.bot != nil {
		return r.bot, nil
	}

	bot, err := tgbotapi.NewBotAPIWithClient(r.token, r.apiEndpoint, r.client)
	if err != nil {
		r.logger.Error("Error creating bot", "error", err)
		return nil, err
	}

	r.bot = bot
	return bot, nil
}
