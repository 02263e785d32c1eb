package agro

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"iotdef.xyz/agro-dashboard-service/pkg/common"
)

func TestFetchPlotHistory(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, agroObj, client := GetMockAgro(t)
	defer ctrl.Finish()

	client.EXPECT().GetDump(gomock.Any()).Return(testDump(), nil)

	history, err := agroObj.History.FetchPlotHistory(context.Background(), "1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "2", history[0].ID)
	assert.Equal(t, "Norte", history[0].PlotName)
}

func TestFetchGeneralHistory(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, agroObj, client := GetMockAgro(t)
	defer ctrl.Finish()

	client.EXPECT().GetDump(gomock.Any()).Return(testDump(), nil)

	history, err := agroObj.History.FetchGeneralHistory(context.Background())
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, []string{"2", "1", "3"}, []string{history[0].ID, history[1].ID, history[2].ID})
}
