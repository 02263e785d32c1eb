package agro

import (
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"iotdef.xyz/agro-dashboard-service/pkg/api/mocks"
	"iotdef.xyz/agro-dashboard-service/pkg/models"
)

var fixedNow = time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

func GetMockAgro(t *testing.T) (*gomock.Controller, *Agro, *mocks.MockIClient) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockIClient(ctrl)
	agroInstance := New(client)
	agroInstance.Now = func() time.Time { return fixedNow }
	return ctrl, agroInstance, client
}

func testDump() models.Dump {
	return models.Dump{
		Plots: []models.PlotRaw{
			{ID: "1", Name: "Norte", Latitude: "21.07", Longitude: "-86.86"},
			{ID: "2", Name: "Sur", Latitude: "", Longitude: "", IsDeleted: true, Responsible: "Luis"},
			{ID: "3", Name: "Este", Latitude: "oops", Longitude: "-86.80"},
		},
		Readings: []models.ReadingRaw{
			{ID: "1", PlotID: "1", RegisteredAt: "2024-04-01T10:00:00Z", Temperature: 20, Humidity: 40},
			{ID: "2", PlotID: "1", RegisteredAt: "2024-04-02T10:00:00Z", Temperature: 22, Humidity: 44, Rain: 1},
			{ID: "3", PlotID: "2", RegisteredAt: "2024-03-02T10:00:00Z", Temperature: 18, Humidity: 70},
		},
	}
}
