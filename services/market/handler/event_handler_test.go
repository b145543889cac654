package handler

import (
	"errors"
	"net/http"
	"testing"

	model "auction-market/internal/models"
	"auction-market/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

// Test ListEventsHandler
func TestListEventsHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		query          string
		mockSetup      func(m *MockEventSourceInterface)
		expectedStatus int
		expectedMsg    string
		expectedCount  int
	}{
		{
			name:  "all",
			query: "",
			mockSetup: func(m *MockEventSourceInterface) {
				m.EXPECT().Events(gomock.Any(), repository.EventFilter{}).
					Return([]model.Event{{Sequence: 1, Name: "Transfer"}, {Sequence: 2, Name: "BidPlaced"}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "events retrieved successfully",
			expectedCount:  2,
		},
		{
			name:  "filtered",
			query: "?contract=" + string(alice) + "&name=BidPlaced&after=1",
			mockSetup: func(m *MockEventSourceInterface) {
				m.EXPECT().Events(gomock.Any(), repository.EventFilter{Contract: alice, Name: "BidPlaced", After: 1}).
					Return([]model.Event{{Sequence: 2, Name: "BidPlaced"}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "events retrieved successfully",
			expectedCount:  1,
		},
		{
			name:  "none_is_array",
			query: "?name=Nothing",
			mockSetup: func(m *MockEventSourceInterface) {
				m.EXPECT().Events(gomock.Any(), repository.EventFilter{Name: "Nothing"}).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "events retrieved successfully",
		},
		{name: "bad_contract", query: "?contract=xyz", expectedStatus: http.StatusBadRequest, expectedMsg: "invalid contract"},
		{name: "bad_after", query: "?after=-1", expectedStatus: http.StatusBadRequest, expectedMsg: "invalid after"},
		{
			name:  "source_failure",
			query: "",
			mockSetup: func(m *MockEventSourceInterface) {
				m.EXPECT().Events(gomock.Any(), repository.EventFilter{}).Return(nil, errors.New("context canceled"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			source := NewMockEventSourceInterface(ctrl)
			if tc.mockSetup != nil {
				tc.mockSetup(source)
			}
			router := newTestRouter()
			router.GET("/events", NewEventHandler(source).ListEventsHandler)

			status, resp := perform(t, router, http.MethodGet, "/events"+tc.query, model.ZeroAddress, nil)
			require.Equal(t, tc.expectedStatus, status)
			require.Contains(t, resp["message"], tc.expectedMsg)
			if status == http.StatusOK {
				require.Len(t, resp["data"], tc.expectedCount)
			}
		})
	}
}
