package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/api/version", h.getServerVersion)

	// service API
	router.Group(func(r chi.Router) {
		r.Use(h.withRateLimit)

		r.Post("/api/discovery/start", handle(h.devices.StartDeviceDiscovery))
		r.Post("/api/discovery/stop", handle(h.devices.StopDeviceDiscovery))
		r.Post("/api/publish/start", handle(h.devices.PublishDeviceDiscovery))
		r.Post("/api/publish/stop", handle(h.devices.UnpublishDeviceDiscovery))

		r.Post("/api/auth/authenticate", handle(h.devices.AuthenticateDevice))
		r.Post("/api/auth/unauthenticate", handle(h.devices.UnauthenticateDevice))
		r.Post("/api/auth/verify", handle(h.devices.VerifyAuthentication))

		r.Post("/api/state/register", handle(h.devices.RegisterDevStateCallback))
		r.Post("/api/state/unregister", handle(h.unregisterDevStateCallback))

		r.Post("/api/credential/import", handle(h.devices.ImportCredential))
		r.Post("/api/credential/delete", handle(h.devices.DeleteCredential))
		r.Post("/api/credential/request", h.requestCredential)
		r.Post("/api/credential/register", handle(h.registerCredentialCallback))
		r.Post("/api/credential/unregister", handle(h.unregisterCredentialCallback))

		r.Get("/api/devices/trusted", h.trustedDevices)
		r.Get("/api/devices/local", h.localDevice)
		r.Get("/api/devices/{networkID}/udid", h.deviceUdid)
		r.Get("/api/devices/{networkID}/uuid", h.deviceUuid)

		r.Post("/api/events/notify", handle(h.devices.NotifyEvent))
		r.Get("/api/events", h.streamEvents)
	})

	// device bus daemon webhooks
	if h.bus != nil {
		router.Route("/api/bus", func(r chi.Router) {
			r.Post("/nodes/online", busHook(h.bus.OnDeviceOnline))
			r.Post("/nodes/offline", busHook(h.bus.OnDeviceOffline))
			r.Post("/nodes/changed", busHook(h.bus.OnDeviceInfoChanged))
			r.Post("/discovery/found", busHook(h.onDeviceFound))
			r.Post("/discovery/result", busHook(h.bus.OnDiscoveryResult))
			r.Post("/publish/result", busHook(h.bus.OnPublishResult))
			r.Post("/sessions/opened", busHook(h.bus.OnSessionOpened))
			r.Post("/sessions/closed", busHook(h.bus.OnSessionClosed))
			r.Post("/sessions/data", busHook(h.bus.OnSessionData))
		})
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
