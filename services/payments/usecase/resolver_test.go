package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/kwabena-io/sikaflow/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestResolveBusiness_ExplicitBusinessID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// explicit business id short-circuits; no cache or repo calls
	uc, _ := newTestUC(ctrl)

	got := uc.resolveBusiness(context.Background(), models.EventMetadata{BusinessID: "biz_1"})
	assert.Equal(t, "biz_1", got)
}

func TestResolveBusiness_PaymentLinkCacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)

	m.attrCache.EXPECT().
		Get(gomock.Any(), "payment_link:business:pl_1").
		Return("biz_2", nil)

	got := uc.resolveBusiness(context.Background(), models.EventMetadata{PaymentLinkID: "pl_1"})
	assert.Equal(t, "biz_2", got)
}

func TestResolveBusiness_PaymentLinkCacheMissWritesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)

	m.attrCache.EXPECT().Get(gomock.Any(), "payment_link:business:pl_1").Return("", errors.New("redis: nil"))
	m.attrRepo.EXPECT().GetPaymentLink(gomock.Any(), "pl_1").Return(&models.PaymentLink{ID: "pl_1", BusinessID: "biz_2"}, nil)
	m.attrCache.EXPECT().Set(gomock.Any(), "payment_link:business:pl_1", "biz_2", attributionCacheTTL).Return(nil)

	got := uc.resolveBusiness(context.Background(), models.EventMetadata{PaymentLinkID: "pl_1"})
	assert.Equal(t, "biz_2", got)
}

func TestResolveBusiness_FallsThroughToStorefront(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)

	// payment link lookup fails, storefront lookup resolves
	m.attrCache.EXPECT().Get(gomock.Any(), "payment_link:business:pl_gone").Return("", errors.New("redis: nil"))
	m.attrRepo.EXPECT().GetPaymentLink(gomock.Any(), "pl_gone").Return(nil, errors.New("not found"))

	m.attrCache.EXPECT().Get(gomock.Any(), "storefront:business:sf_1").Return("", errors.New("redis: nil"))
	m.attrRepo.EXPECT().GetStorefront(gomock.Any(), "sf_1").Return(&models.Storefront{ID: "sf_1", BusinessID: "biz_3"}, nil)
	m.attrCache.EXPECT().Set(gomock.Any(), "storefront:business:sf_1", "biz_3", attributionCacheTTL).Return(nil)

	got := uc.resolveBusiness(context.Background(), models.EventMetadata{
		PaymentLinkID: "pl_gone",
		StorefrontID:  "sf_1",
	})
	assert.Equal(t, "biz_3", got)
}

func TestResolveBusiness_NothingResolves(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)

	m.attrCache.EXPECT().Get(gomock.Any(), gomock.Any()).Return("", errors.New("redis: nil")).AnyTimes()
	m.attrRepo.EXPECT().GetPaymentLink(gomock.Any(), "pl_1").Return(nil, errors.New("not found"))
	m.attrRepo.EXPECT().GetStorefront(gomock.Any(), "sf_1").Return(nil, errors.New("not found"))

	got := uc.resolveBusiness(context.Background(), models.EventMetadata{
		PaymentLinkID: "pl_1",
		StorefrontID:  "sf_1",
	})
	assert.Equal(t, "", got)
}

func TestResolveBusiness_EmptyMetadata(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _ := newTestUC(ctrl)

	got := uc.resolveBusiness(context.Background(), models.EventMetadata{})
	assert.Equal(t, "", got)
}

func TestCachedLookup_CacheSetFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)

	m.attrCache.EXPECT().Get(gomock.Any(), "payment_link:business:pl_1").Return("", errors.New("redis down"))
	m.attrRepo.EXPECT().GetPaymentLink(gomock.Any(), "pl_1").Return(&models.PaymentLink{ID: "pl_1", BusinessID: "biz_2"}, nil)
	m.attrCache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	got := uc.resolveBusiness(context.Background(), models.EventMetadata{PaymentLinkID: "pl_1"})
	assert.Equal(t, "biz_2", got)
}
