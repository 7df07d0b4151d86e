package steps

import (
	"context"
	"time"

	"sensor-simulator/test/functional/driver"
)

func (fc *FeatureContext) theSimulatorPrefersExistingSensors() error {
	fc.preferExisting = true
	return nil
}

func (fc *FeatureContext) theSimulatorRunsSensor(name, sensorType string, durationMs, intervalMs int) error {
	fc.summary, fc.simulationErr = driver.RunSimulation(context.Background(), driver.SimulationRequest{
		BaseURL:        fc.baseURL,
		Name:           name,
		Type:           sensorType,
		Location:       "Simulation Lab",
		Interval:       time.Duration(intervalMs) * time.Millisecond,
		Duration:       time.Duration(durationMs) * time.Millisecond,
		PreferExisting: fc.preferExisting,
	})
	return nil
}

func (fc *FeatureContext) theSimulationShouldStopWithReason(reason string) error {
	fc.require.Equal(reason, string(fc.summary.Reason))
	return nil
}

func (fc *FeatureContext) theSimulationShouldFail() error {
	fc.require.Error(fc.simulationErr)
	return nil
}

func (fc *FeatureContext) theSimulationShouldReportReadings(count int) error {
	fc.require.Equal(count, fc.summary.ReadingCount)
	return nil
}

func (fc *FeatureContext) theSimulationShouldReportAtLeastReadings(count int) error {
	fc.require.NoError(fc.simulationErr)
	fc.require.GreaterOrEqual(fc.summary.ReadingCount, count)
	fc.require.Zero(fc.summary.FailedCount)
	return nil
}

func (fc *FeatureContext) theSimulationShouldUseTheExistingSensor() error {
	fc.require.NotEmpty(fc.existingID)
	fc.require.Equal(fc.existingID, fc.summary.SensorID)
	return nil
}
