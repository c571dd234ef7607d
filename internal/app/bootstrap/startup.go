// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections
// and schema setup are complete, but before the HTTP handler is built.
// FormHub has no shared resources to warm; the hook exists so the
// lifecycle stays explicit as the app grows.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	logger.Info("formhub starting",
		zap.String("notify_to", appCfg.NotifyTo),
		zap.String("smtp_host", appCfg.MailSMTPHost))
	return nil
}
