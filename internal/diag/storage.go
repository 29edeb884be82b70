package diag

import (
	"context"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
)

const storageCheckTimeout = 10 * time.Second

// CheckObjectStorage validates the Cloudinary credentials with one
// read-only Admin API "usage" call.  It short-circuits to failure when
// any of the three credentials is absent.
func CheckObjectStorage(ctx context.Context, cloudName, apiKey, apiSecret string) []Result {
	const name = "object storage (cloudinary)"
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return []Result{Fail(name, "CLOUD_NAME, API_KEY or API_SECRET_KEY not set")}
	}

	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return []Result{Failf(name, "init client: %v", err)}
	}

	ctx, cancel := context.WithTimeout(ctx, storageCheckTimeout)
	defer cancel()

	usage, err := cld.Admin.Usage(ctx, admin.UsageParams{})
	if err != nil {
		return []Result{Failf(name, "usage call: %v", err)}
	}
	if usage != nil && usage.Error.Message != "" {
		return []Result{Failf(name, "usage call: %s", usage.Error.Message)}
	}
	return []Result{Pass(name, "credentials accepted")}
}
