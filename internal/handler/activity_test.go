package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/RobNel12/newbot-ai/internal/cooldown"
	"github.com/RobNel12/newbot-ai/internal/domain"
)

func TestHandlePerformActivity(t *testing.T) {
	validBody := PlayerRequest{GuildID: testGuild, UserID: testUser}

	tests := []struct {
		name           string
		activity       string
		body           any
		setupMock      func(*MockActivityService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:     "Success",
			activity: "mine",
			body:     validBody,
			setupMock: func(m *MockActivityService) {
				m.On("Perform", mock.Anything, testUser, testGuild, "mine").Return(&domain.ActivityResult{
					Activity: "mine", Title: "⛏️ Mine", Success: true, CoinsEarned: 14,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"coins_earned":14`,
		},
		{
			name:     "Cooldown",
			activity: "mine",
			body:     validBody,
			setupMock: func(m *MockActivityService) {
				m.On("Perform", mock.Anything, testUser, testGuild, "mine").
					Return(nil, cooldown.ErrOnCooldown{Action: "mine", Remaining: 42 * time.Second})
			},
			expectedStatus: http.StatusTooManyRequests,
			expectedBody:   `"retry_after_seconds":42`,
		},
		{
			name:     "Insufficient funds",
			activity: "train",
			body:     validBody,
			setupMock: func(m *MockActivityService) {
				m.On("Perform", mock.Anything, testUser, testGuild, "train").
					Return(nil, fmt.Errorf("%w: train costs 15 coins", domain.ErrInsufficientFunds))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInsufficientFunds,
		},
		{
			name:     "Unknown activity",
			activity: "dance",
			body:     validBody,
			setupMock: func(m *MockActivityService) {
				m.On("Perform", mock.Anything, testUser, testGuild, "dance").
					Return(nil, fmt.Errorf("%w: dance", domain.ErrUnknownActivity))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgUnknownActivity,
		},
		{
			name:           "Invalid ID",
			activity:       "mine",
			body:           PlayerRequest{GuildID: "not-a-guild", UserID: testUser},
			setupMock:      func(m *MockActivityService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"guildid":"Must be a Discord ID"`,
		},
		{
			name:           "Malformed body",
			activity:       "mine",
			body:           "{",
			setupMock:      func(m *MockActivityService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
		{
			name:     "Storage failure is masked",
			activity: "mine",
			body:     validBody,
			setupMock: func(m *MockActivityService) {
				m.On("Perform", mock.Anything, testUser, testGuild, "mine").
					Return(nil, errors.New("pq: relation players does not exist"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   ErrMsgGenericServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockActivityService)
			tt.setupMock(svc)

			rec := serve(http.MethodPost, "/activities/{activity}", "/activities/"+tt.activity, tt.body, HandlePerformActivity(svc))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			assert.NotContains(t, rec.Body.String(), "pq:")
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleBuy(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockActivityService)
		svc.On("Purchase", mock.Anything, testUser, testGuild, 2).Return(&domain.PurchaseResult{
			Item:      domain.ShopItem{Name: "Iron Dagger", Cost: 60},
			CoinsLeft: 60,
		}, nil)
		body := BuyRequest{PlayerRequest: PlayerRequest{GuildID: testGuild, UserID: testUser}, Slot: 2}

		rec := serve(http.MethodPost, "/shop/buy", "/shop/buy", body, HandleBuy(svc))

		require.Equal(t, http.StatusOK, rec.Code)
		var got domain.PurchaseResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "Iron Dagger", got.Item.Name)
		assert.Equal(t, 60, got.CoinsLeft)
	})

	t.Run("Empty slot", func(t *testing.T) {
		svc := new(MockActivityService)
		svc.On("Purchase", mock.Anything, testUser, testGuild, 5).Return(nil, fmt.Errorf("%w: slot 5", domain.ErrShopSlotEmpty))
		body := `{"guild_id":"` + testGuild + `","user_id":"` + testUser + `","slot":5}`

		rec := serve(http.MethodPost, "/shop/buy", "/shop/buy", body, HandleBuy(svc))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "That slot is empty today.")
	})

	t.Run("Slot out of range is rejected before the service", func(t *testing.T) {
		svc := new(MockActivityService)
		body := `{"guild_id":"` + testGuild + `","user_id":"` + testUser + `","slot":0}`

		rec := serve(http.MethodPost, "/shop/buy", "/shop/buy", body, HandleBuy(svc))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "Purchase", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
