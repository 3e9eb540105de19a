package mediahost

import (
	"context"
	"errors"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"
)

type CloudinaryMediaHost struct {
	client  *cloudinary.Cloudinary
	breaker *gobreaker.CircuitBreaker[string]
}

func CreateCloudinaryMediaHost(cloudName string, apiKey string, apiSecret string) (MediaHost, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}

	var st gobreaker.Settings
	st.Name = "cloudinary"
	st.ReadyToTrip = func(counts gobreaker.Counts) bool {
		failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
		return counts.Requests >= 3 && failureRatio >= 0.6
	}

	return &CloudinaryMediaHost{
		client:  cld,
		breaker: gobreaker.NewCircuitBreaker[string](st),
	}, nil
}

func (m *CloudinaryMediaHost) Upload(ctx context.Context, filename string, file io.Reader) (string, error) {
	return m.breaker.Execute(func() (string, error) {
		resp, err := m.client.Upload.Upload(ctx, file, uploader.UploadParams{
			PublicID: ulid.Make().String(),
			Folder:   "products",
		})
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "Upload").Str("filename", filename).Msg("")
			return "", err
		}

		if resp.SecureURL != "" {
			return resp.SecureURL, nil
		}
		if resp.URL != "" {
			return resp.URL, nil
		}

		return "", errors.New("media host returned no URL")
	})
}
