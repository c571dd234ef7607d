// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	healthfeature "github.com/formhub/formhub/internal/app/features/health"
	submitfeature "github.com/formhub/formhub/internal/app/features/submit"
	"github.com/formhub/formhub/internal/app/store/submissions"
	"github.com/formhub/formhub/internal/app/system/mailer"
	"github.com/formhub/formhub/internal/app/system/requestlog"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup,
// and any Startup hooks have completed. FormHub's surface is small:
//
//	GET  /        liveness answer for the form client
//	POST /        submission intake (store + notification)
//	GET  /health  readiness probe including database state
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	store := submissions.New(deps.MongoDatabase)

	sender := mailer.New(mailer.Config{
		Host:     appCfg.MailSMTPHost,
		Port:     appCfg.MailSMTPPort,
		User:     appCfg.MailSMTPUser,
		Pass:     appCfg.MailSMTPPass,
		From:     appCfg.MailFrom,
		FromName: appCfg.MailFromName,
	}, logger)

	r := chi.NewRouter()

	// Every request gets a correlation ID and a structured access log line.
	r.Use(requestlog.Middleware(logger))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Submission intake (the webhook surface the form posts to)
	submitHandler := submitfeature.NewHandler(store, sender, submitfeature.Config{
		NotifyTo:      appCfg.NotifyTo,
		SubjectPrefix: appCfg.NotifySubject,
	}, logger)
	r.Mount("/", submitfeature.Routes(submitHandler))

	return r, nil
}
