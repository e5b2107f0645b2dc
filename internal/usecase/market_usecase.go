package usecase

import (
	"errors"
	"math"

	"antidoshirak/internal/domain/catalog"
	"antidoshirak/internal/domain/entities"
)

var ErrMarketServiceNotFound = errors.New("market service not found")

// PricePosition places a user price relative to a tier's band.
type PricePosition string

const (
	PriceBelow  PricePosition = "below"
	PriceInside PricePosition = "inside"
	PriceAbove  PricePosition = "above"
)

// IMarketUseCase benchmarks a quote total against published market tiers.
type IMarketUseCase interface {
	Services() catalog.MarketRates
	Compare(serviceID string, items []entities.LineItem, userPrice float64) (MarketComparison, error)
}

// TierComparison is one tier's band scaled to the detected volume, with
// the user's position in it.
type TierComparison struct {
	Tier      catalog.MarketTier
	ScaledMin float64
	ScaledMax float64
	Position  PricePosition
}

// MarketComparison is the full calibration result for one service.
type MarketComparison struct {
	Service        catalog.MarketService
	ScaleFactor    float64
	DetectedVolume float64
	UserPrice      float64
	Tiers          []TierComparison
}

type MarketUseCase struct {
	rates catalog.MarketRates
}

var _ IMarketUseCase = (*MarketUseCase)(nil)

func NewMarketUseCase() *MarketUseCase {
	return &MarketUseCase{rates: catalog.Rates()}
}

func (u *MarketUseCase) Services() catalog.MarketRates {
	return u.rates
}

// Compare scales the service's reference bands to the volume detected in
// the item list. Scale is always a whole number of reference packs,
// rounded up: nobody sells 1.5 packs.
func (u *MarketUseCase) Compare(serviceID string, items []entities.LineItem, userPrice float64) (MarketComparison, error) {
	var svc catalog.MarketService
	var found bool
	for _, s := range u.rates.Services {
		if s.ID == serviceID {
			svc, found = s, true
			break
		}
	}
	if !found {
		return MarketComparison{}, ErrMarketServiceNotFound
	}

	volume := detectVolume(svc.Category, items)
	factor := 1.0
	if svc.BaseUnitAmount > 0 && volume > 0 {
		factor = math.Ceil(math.Max(1, volume/svc.BaseUnitAmount))
	}

	cmp := MarketComparison{
		Service:        svc,
		ScaleFactor:    factor,
		DetectedVolume: volume,
		UserPrice:      userPrice,
	}
	for _, tier := range []catalog.MarketTier{svc.Tier1, svc.Tier2, svc.Tier3} {
		min := tier.PriceMin * factor
		max := tier.PriceMax * factor
		cmp.Tiers = append(cmp.Tiers, TierComparison{
			Tier:      tier,
			ScaledMin: min,
			ScaledMax: max,
			Position:  position(userPrice, min, max),
		})
	}
	return cmp, nil
}

// detectVolume matches items to the service category: seconds for video
// work (generations at ~5s each), piece counts for image and audio packs.
func detectVolume(category string, items []entities.LineItem) float64 {
	var volume float64
	switch category {
	case "Video Gen":
		for _, i := range items {
			switch i.Category {
			case entities.CategoryVideo, entities.CategoryAvatar, entities.CategoryAudio:
				switch i.Unit {
				case entities.UnitSecond:
					volume += i.Amount
				case entities.UnitMinute:
					volume += i.Amount * 60
				default:
					volume += i.Amount * 5
				}
			}
		}
	case "Image Gen":
		for _, i := range items {
			if i.Category == entities.CategoryImage {
				volume += i.Amount
			}
		}
	case "Audio Gen":
		for _, i := range items {
			if i.Category == entities.CategoryAudio {
				volume += i.Amount
			}
		}
	}
	return volume
}

// Closed interval so adjacent bands leave no gaps.
func position(price, min, max float64) PricePosition {
	switch {
	case price < min:
		return PriceBelow
	case price <= max:
		return PriceInside
	default:
		return PriceAbove
	}
}
