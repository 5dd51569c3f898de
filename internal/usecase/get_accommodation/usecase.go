package get_accommodation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-ReservationClient/internal/domain"
	accClient "github.com/m04kA/SMC-ReservationClient/internal/integrations/accommodationservice"
)

// UseCase use case для получения карточки размещения
type UseCase struct {
	accClient AccommodationServiceClient
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(accClient AccommodationServiceClient, logger Logger) *UseCase {
	return &UseCase{
		accClient: accClient,
		logger:    logger,
	}
}

// Execute получает размещение и его изображения параллельно.
// Ошибка загрузки изображений не делает карточку недоступной.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAccommodation: accommodation=%s", req.AccommodationID)

	if strings.TrimSpace(req.AccommodationID) == "" {
		return nil, fmt.Errorf("%w: accommodation id is required", ErrInvalidInput)
	}

	var (
		acc    *accClient.AccommodationResponse
		images []accClient.Image
		loaded bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		acc, err = uc.accClient.GetAccommodation(gctx, req.Token, req.AccommodationID)
		return err
	})
	g.Go(func() error {
		var err error
		images, err = uc.accClient.GetImages(gctx, req.Token, req.AccommodationID)
		if err != nil {
			uc.logger.Warn("GetAccommodation: failed to get images for accommodation=%s: %v", req.AccommodationID, err)
			return nil
		}
		loaded = true
		return nil
	})

	if err := g.Wait(); err != nil {
		if errors.Is(err, accClient.ErrAccommodationNotFound) {
			uc.logger.Warn("GetAccommodation: accommodation=%s not found", req.AccommodationID)
			return nil, ErrAccommodationNotFound
		}
		uc.logger.Error("GetAccommodation: failed to get accommodation=%s: %v", req.AccommodationID, err)
		return nil, fmt.Errorf("%w: failed to get accommodation: %v", ErrInternal, err)
	}

	urls := make([]string, 0, len(images))
	for _, img := range images {
		if len(img.Data) == 0 {
			continue
		}
		urls = append(urls, dataURL(img.Data))
	}

	return &Response{
		Accommodation: domain.Accommodation{
			ID:          acc.ID,
			HostID:      acc.HostID,
			Name:        acc.Name,
			Location:    acc.Location,
			Description: acc.Description,
			MinGuests:   acc.MinGuests,
			MaxGuests:   acc.MaxGuests,
			Amenities:   buildAmenityMap(acc.Amenities),
			Images:      urls,
		},
		ImagesLoaded: loaded,
	}, nil
}
