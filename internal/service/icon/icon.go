// Package icon derives third-party icon-service URLs for skill names.
package icon

import (
	"fmt"
	"strings"

	"github.com/portfolioz/server/internal/config"
)

// urlTemplate is the icon service's address scheme: lower-cased skill name
// as the subdomain-style path, API key as a query token.
const urlTemplate = "https://img.logo.dev/%s.com?token=%s"

// Service derives icon URLs. It is stateless and performs no I/O; the icon
// service is fetched by the client, not by this server.
type Service struct {
	apiKey string
}

// NewService creates an icon Service with the configured API key.
func NewService(cfg config.IconConfig) *Service {
	return &Service{apiKey: cfg.APIKey}
}

// URL formats the icon-service URL for a skill name.
func (s *Service) URL(skillName string) string {
	return fmt.Sprintf(urlTemplate, strings.ToLower(skillName), s.apiKey)
}
