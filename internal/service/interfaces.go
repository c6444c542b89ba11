package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"
	"net/url"

	"github.com/MKhiriev/go-secure-routes/models"
)

// AppInfoService exposes application metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// ConnectionService decides whether a request may be served over the
// protocol it arrived on.
type ConnectionService interface {
	// Check returns the verdict for a request to route over conn.
	Check(ctx context.Context, route string, conn models.ConnectionState) models.Verdict
	// Classify classifies a request method as safe or unsafe.
	Classify(method string) models.MethodClass
}

// URLService generates links that point at the protocol their route needs.
type URLService interface {
	CreateURL(ctx context.Context, conn models.ConnectionState, route string, params url.Values) (string, error)
	CreateAbsoluteURL(ctx context.Context, conn models.ConnectionState, route string, params url.Values, scheme string) (string, error)

	// Annotate binds absolute origins on host to the routing rules the
	// connection policy pins to one protocol. It returns the number of
	// rules bound by this call.
	Annotate(ctx context.Context, host string) (int, error)
}

// ConnectionServiceWrapper defines middleware composition for
// ConnectionService. Implementations wrap an existing ConnectionService to
// add behavior such as logging or metrics.
type ConnectionServiceWrapper interface {
	Wrap(ConnectionService) ConnectionService // returns a decorated ConnectionService applying additional behavior
}
