package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/kwabena-io/sikaflow/internal/pkg/constants"
	"github.com/kwabena-io/sikaflow/internal/pkg/logger"
	"github.com/kwabena-io/sikaflow/internal/pkg/models"
)

// attributionCacheTTL bounds staleness of cached ownership lookups
const attributionCacheTTL = 10 * time.Minute

// resolveBusiness determines which business owns a payment event from its
// partial metadata. Resolution order: explicit business id, payment link
// owner, storefront owner. Returns "" when nothing resolves; a missing
// attribution must never block recording of an otherwise-successful payment,
// so every failure path here logs and falls through.
func (uc *PaymentUC) resolveBusiness(ctx context.Context, meta models.EventMetadata) string {
	if meta.BusinessID != "" {
		return meta.BusinessID
	}

	if meta.PaymentLinkID != "" {
		businessID := uc.cachedLookup(ctx, constants.KeyPaymentLinkBusiness, meta.PaymentLinkID, func() (string, error) {
			link, err := uc.attrRepo.GetPaymentLink(ctx, meta.PaymentLinkID)
			if err != nil {
				return "", err
			}
			return link.BusinessID, nil
		})
		if businessID != "" {
			return businessID
		}
		logger.Warn("Attribution via payment link failed",
			logger.String("payment_link_id", meta.PaymentLinkID))
	}

	if meta.StorefrontID != "" {
		businessID := uc.cachedLookup(ctx, constants.KeyStorefrontBusiness, meta.StorefrontID, func() (string, error) {
			storefront, err := uc.attrRepo.GetStorefront(ctx, meta.StorefrontID)
			if err != nil {
				return "", err
			}
			return storefront.BusinessID, nil
		})
		if businessID != "" {
			return businessID
		}
		logger.Warn("Attribution via storefront failed",
			logger.String("storefront_id", meta.StorefrontID))
	}

	return ""
}

// cachedLookup consults the attribution cache before the repository and
// writes through on a miss. Cache errors degrade to a direct lookup.
func (uc *PaymentUC) cachedLookup(ctx context.Context, keyFormat, id string, lookup func() (string, error)) string {
	key := fmt.Sprintf(keyFormat, id)

	if uc.attrCache != nil {
		if cached, err := uc.attrCache.Get(ctx, key); err == nil && cached != "" {
			return cached
		}
	}

	value, err := lookup()
	if err != nil {
		logger.Warn("Attribution lookup failed",
			logger.String("key", key),
			logger.Err(err))
		return ""
	}

	if uc.attrCache != nil && value != "" {
		if err := uc.attrCache.Set(ctx, key, value, attributionCacheTTL); err != nil {
			logger.Debug("Attribution cache write failed",
				logger.String("key", key),
				logger.Err(err))
		}
	}

	return value
}
