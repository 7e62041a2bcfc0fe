package publish

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portfolioz/server/internal/config"
	"github.com/portfolioz/server/internal/domain"
	"github.com/portfolioz/server/internal/store"
)

// fakePortfolioStore is an in-memory PortfolioStore keyed by email. It
// enforces the same uniqueness the real store's index provides.
type fakePortfolioStore struct {
	byEmail map[string]*domain.Portfolio

	// failNextCreate simulates losing the insert race: Create reports a
	// duplicate while the winner's document is already visible.
	failNextCreate *domain.Portfolio
}

func newFakePortfolioStore() *fakePortfolioStore {
	return &fakePortfolioStore{byEmail: make(map[string]*domain.Portfolio)}
}

func (s *fakePortfolioStore) GetByEmail(ctx context.Context, email string) (*domain.Portfolio, error) {
	p, ok := s.byEmail[email]
	if !ok {
		return nil, store.ErrPortfolioNotFound
	}
	return p, nil
}

func (s *fakePortfolioStore) Create(ctx context.Context, portfolio *domain.Portfolio) error {
	if s.failNextCreate != nil {
		s.byEmail[s.failNextCreate.Email] = s.failNextCreate
		s.failNextCreate = nil
		return store.ErrPortfolioExists
	}
	if _, ok := s.byEmail[portfolio.Email]; ok {
		return store.ErrPortfolioExists
	}
	s.byEmail[portfolio.Email] = portfolio
	return nil
}

func newTestService(t *testing.T) (*Service, *fakePortfolioStore) {
	t.Helper()
	portfolios := newFakePortfolioStore()
	svc := NewService(portfolios, config.PublishConfig{BaseURL: "https://portfolioz.example.com"})
	return svc, portfolios
}

func TestPublish_MintsLinkAndPersists(t *testing.T) {
	t.Parallel()

	svc, portfolios := newTestService(t)

	link, err := svc.Publish(context.Background(), "a@x.com", "<p>hello</p>")
	require.NoError(t, err)
	assert.Equal(t, "https://portfolioz.example.com/portfolio/a@x.com", link)

	stored := portfolios.byEmail["a@x.com"]
	require.NotNil(t, stored)
	assert.Equal(t, "<p>hello</p>", stored.HTML)
	assert.False(t, stored.CreatedAt.IsZero())
}

func TestPublish_FirstWriteWins(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	first, err := svc.Publish(context.Background(), "a@x.com", "<p>first</p>")
	require.NoError(t, err)

	// A republish with different HTML returns the same link and leaves
	// the stored HTML untouched.
	second, err := svc.Publish(context.Background(), "a@x.com", "<p>second</p>")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	html, err := svc.Fetch(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "<p>first</p>", html)
}

func TestPublish_ConcurrentInsertLoserGetsWinnersLink(t *testing.T) {
	t.Parallel()

	svc, portfolios := newTestService(t)

	portfolios.failNextCreate = &domain.Portfolio{
		Email:    "a@x.com",
		HTML:     "<p>winner</p>",
		LiveLink: "https://portfolioz.example.com/portfolio/a@x.com",
	}

	link, err := svc.Publish(context.Background(), "a@x.com", "<p>loser</p>")
	require.NoError(t, err)
	assert.Equal(t, "https://portfolioz.example.com/portfolio/a@x.com", link)

	html, err := svc.Fetch(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "<p>winner</p>", html)
}

func TestPublish_SanitizesBeforePersisting(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	_, err := svc.Publish(context.Background(), "a@x.com",
		`<p>ok</p><script>alert(1)</script><img src="https://x.com/a.png" alt="a">`)
	require.NoError(t, err)

	html, err := svc.Fetch(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
	assert.NotContains(t, html, "alert(1)")
	assert.Contains(t, html, "<p>ok</p>")
	assert.Contains(t, html, "<img")
	assert.Contains(t, html, `src="https://x.com/a.png"`)
}

func TestFetch_NotPublished(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	_, err := svc.Fetch(context.Background(), "nobody@x.com")
	assert.ErrorIs(t, err, store.ErrPortfolioNotFound)
}

func TestSanitize_Policy(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	tests := []struct {
		name        string
		input       string
		contains    []string
		notContains []string
	}{
		{
			name:        "script stripped",
			input:       `<div><script src="evil.js"></script>text</div>`,
			contains:    []string{"<div>", "text"},
			notContains: []string{"script", "evil.js"},
		},
		{
			name:        "event handlers stripped",
			input:       `<p onclick="steal()">hi</p>`,
			contains:    []string{"<p>hi</p>"},
			notContains: []string{"onclick"},
		},
		{
			name:     "img with allowed attributes preserved",
			input:    `<img src="https://x.com/a.png" alt="pic" title="t">`,
			contains: []string{`src="https://x.com/a.png"`, `alt="pic"`, `title="t"`},
		},
		{
			name:        "javascript href dropped",
			input:       `<a href="javascript:alert(1)">x</a>`,
			contains:    []string{"<a>x</a>"},
			notContains: []string{"javascript:"},
		},
		{
			name:     "style attribute allowed",
			input:    `<span style="color:red">x</span>`,
			contains: []string{"style="},
		},
		{
			name:        "iframe stripped",
			input:       `<iframe src="https://evil.com"></iframe>fine`,
			contains:    []string{"fine"},
			notContains: []string{"iframe"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Sanitize(tt.input)
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
			for _, not := range tt.notContains {
				assert.NotContains(t, got, not)
			}
		})
	}
}
