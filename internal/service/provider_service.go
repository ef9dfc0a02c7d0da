package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"szepseg-katalogus/internal/domain"
	"szepseg-katalogus/internal/repository"
)

var (
	ErrProviderAlreadyApproved = errors.New("provider already approved")
	ErrInvalidCategory         = errors.New("invalid category")
)

const (
	approvedProvidersCacheKey = "providers:approved"
	approvedProvidersCacheTTL = 5 * time.Minute
)

type ProviderService interface {
	Register(ctx context.Context, input domain.RegisterProviderInput) (*domain.Provider, error)
	List(ctx context.Context) ([]domain.Provider, error)
	ListApproved(ctx context.Context) ([]domain.Provider, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Provider, error)
	Update(ctx context.Context, id primitive.ObjectID, input domain.UpdateProviderInput) (*domain.Provider, error)
	Approve(ctx context.Context, id primitive.ObjectID) (*domain.Provider, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type providerService struct {
	providerRepo repository.ProviderRepository
	mediaService MediaService
	emailService EmailService
	redis        *redis.Client
}

func NewProviderService(providerRepo repository.ProviderRepository, mediaService MediaService, emailService EmailService, redis *redis.Client) ProviderService {
	return &providerService{
		providerRepo: providerRepo,
		mediaService: mediaService,
		emailService: emailService,
		redis:        redis,
	}
}

func (s *providerService) Register(ctx context.Context, input domain.RegisterProviderInput) (*domain.Provider, error) {
	if !domain.IsValidCategory(input.Category) {
		return nil, ErrInvalidCategory
	}

	provider := &domain.Provider{
		Name:        input.Name,
		Email:       input.Email,
		Category:    input.Category,
		MinPrice:    input.MinPrice,
		MaxPrice:    input.MaxPrice,
		Country:     input.Country,
		City:        input.City,
		PostalCode:  input.PostalCode,
		Street:      input.Street,
		HouseNumber: input.HouseNumber,
		PhoneNumber: input.PhoneNumber,
		Instagram:   input.Instagram,
		Facebook:    input.Facebook,
		TikTok:      input.TikTok,
	}

	if err := s.providerRepo.Create(ctx, provider); err != nil {
		return nil, err
	}

	s.invalidateListingCache(ctx)
	return provider, nil
}

func (s *providerService) List(ctx context.Context) ([]domain.Provider, error) {
	return s.providerRepo.GetAll(ctx)
}

func (s *providerService) ListApproved(ctx context.Context) ([]domain.Provider, error) {
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, approvedProvidersCacheKey).Result(); err == nil {
			var providers []domain.Provider
			if json.Unmarshal([]byte(cached), &providers) == nil {
				return providers, nil
			}
		}
	}

	providers, err := s.providerRepo.GetApproved(ctx)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if data, err := json.Marshal(providers); err == nil {
			_ = s.redis.Set(ctx, approvedProvidersCacheKey, data, approvedProvidersCacheTTL).Err()
		}
	}
	return providers, nil
}

func (s *providerService) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Provider, error) {
	provider, err := s.providerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, ErrProviderNotFound
	}
	return provider, nil
}

func (s *providerService) Update(ctx context.Context, id primitive.ObjectID, input domain.UpdateProviderInput) (*domain.Provider, error) {
	provider, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Category != nil {
		if !domain.IsValidCategory(*input.Category) {
			return nil, ErrInvalidCategory
		}
		provider.Category = *input.Category
	}
	if input.Name != nil {
		provider.Name = *input.Name
	}
	if input.Email != nil {
		provider.Email = *input.Email
	}
	if input.MinPrice != nil {
		provider.MinPrice = *input.MinPrice
	}
	if input.MaxPrice != nil {
		provider.MaxPrice = *input.MaxPrice
	}
	if input.Country != nil {
		provider.Country = *input.Country
	}
	if input.City != nil {
		provider.City = *input.City
	}
	if input.PostalCode != nil {
		provider.PostalCode = *input.PostalCode
	}
	if input.Street != nil {
		provider.Street = *input.Street
	}
	if input.HouseNumber != nil {
		provider.HouseNumber = *input.HouseNumber
	}
	if input.PhoneNumber != nil {
		provider.PhoneNumber = *input.PhoneNumber
	}
	if input.Instagram != nil {
		provider.Instagram = input.Instagram
	}
	if input.Facebook != nil {
		provider.Facebook = input.Facebook
	}
	if input.TikTok != nil {
		provider.TikTok = input.TikTok
	}

	if err := s.providerRepo.Save(ctx, provider); err != nil {
		return nil, err
	}

	s.invalidateListingCache(ctx)
	return provider, nil
}

// Approve flips the approved flag after purging all staged media. Store-side
// delete failures are logged and never block the approval itself.
func (s *providerService) Approve(ctx context.Context, id primitive.ObjectID) (*domain.Provider, error) {
	provider, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if provider.Approved {
		return nil, ErrProviderAlreadyApproved
	}

	result, err := s.mediaService.PurgeAll(ctx, id)
	if err != nil {
		return nil, err
	}
	if !result.Clean() {
		log.Printf("approving provider %s with %d of %d media deletes failed", id.Hex(), result.Failed, result.Attempted)
	}

	provider.Media.Images = []domain.MediaItem{}
	provider.Media.Videos = []domain.MediaItem{}
	provider.Approved = true

	if err := s.providerRepo.Save(ctx, provider); err != nil {
		return nil, err
	}

	s.invalidateListingCache(ctx)

	go func() {
		if err := s.emailService.SendApprovalEmail(context.Background(), provider.Email, provider.Name); err != nil {
			log.Printf("failed to send approval email to %s: %v", provider.Email, err)
		}
	}()

	return provider, nil
}

// Delete purges the provider's media first, then removes the record. A
// missing provider aborts before any store call; partial store failures do
// not keep the record alive.
func (s *providerService) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.mediaService.PurgeAll(ctx, id)
	if err != nil {
		return err
	}
	if !result.Clean() {
		log.Printf("deleting provider %s with %d of %d media deletes failed", id.Hex(), result.Failed, result.Attempted)
	}

	if err := s.providerRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateListingCache(ctx)
	return nil
}

func (s *providerService) invalidateListingCache(ctx context.Context) {
	if s.redis != nil {
		_ = s.redis.Del(ctx, approvedProvidersCacheKey).Err()
	}
}
