package steps

import (
	"context"
	"fmt"
	"net/http/httptest"

	"sensor-simulator/test/functional/driver"
)

func (fc *FeatureContext) aRunningSandbox() error {
	sandbox, err := driver.StartSandbox()
	if err != nil {
		return err
	}
	fc.sandbox = sandbox
	fc.baseURL = sandbox.URL()
	return nil
}

func (fc *FeatureContext) anUnreachableSensorAPI() error {
	server := httptest.NewServer(nil)
	fc.baseURL = server.URL
	server.Close()
	return nil
}

func (fc *FeatureContext) theSandboxAlreadyHasASensor(name, sensorType string) error {
	response, err := fc.sandbox.RegisterSensor(name, sensorType, "Simulation Lab")
	if err != nil {
		return err
	}
	fc.require.Equal(201, response.StatusCode())

	sensor, err := fc.findSensor(name)
	if err != nil {
		return err
	}
	fc.existingID = sensor.ID
	return nil
}

func (fc *FeatureContext) iCallTheHealthzEndpoint() error {
	response, err := fc.sandbox.Healthz()
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) iRegisterTheSensor(name, sensorType, location string) error {
	response, err := fc.sandbox.RegisterSensor(name, sensorType, location)
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) theInactivityCheckRuns() error {
	report, err := fc.sandbox.RefreshStatuses(context.Background())
	if err != nil {
		return err
	}
	fc.require.Equal(report.Checked, report.Active+report.Inactive)
	return nil
}

func (fc *FeatureContext) theResponseStatusCodeShouldBe(code int) error {
	fc.require.NotNil(fc.response, "no request was sent")
	fc.require.Equal(code, fc.response.StatusCode(), "unexpected body: %s", fc.response.String())
	return nil
}

func (fc *FeatureContext) theSandboxShouldListSensorsNamed(count int, name string) error {
	sensors, err := fc.sandbox.ListSensors()
	if err != nil {
		return err
	}

	matches := 0
	for _, sensor := range sensors {
		if sensor.Name == name {
			matches++
		}
	}
	fc.require.Equal(count, matches)
	return nil
}

func (fc *FeatureContext) theSensorShouldBeComputedAs(name, status string) error {
	sensor, err := fc.findSensor(name)
	if err != nil {
		return err
	}
	fc.require.Equal(status, sensor.ComputedStatus)
	return nil
}

func (fc *FeatureContext) theSensorShouldHaveStatus(name, status string) error {
	sensor, err := fc.findSensor(name)
	if err != nil {
		return err
	}
	fc.require.Equal(status, sensor.Status)
	return nil
}

func (fc *FeatureContext) theSandboxShouldHoldEveryReportedReading(name string) error {
	sensor, err := fc.findSensor(name)
	if err != nil {
		return err
	}

	readings, err := fc.sandbox.Readings(sensor.ID)
	if err != nil {
		return err
	}
	fc.require.Len(readings, fc.summary.ReadingCount)
	return nil
}

func (fc *FeatureContext) everyReadingShouldBeWithin(name string, delta, base float64) error {
	sensor, err := fc.findSensor(name)
	if err != nil {
		return err
	}

	readings, err := fc.sandbox.Readings(sensor.ID)
	if err != nil {
		return err
	}
	fc.require.NotEmpty(readings)
	for _, reading := range readings {
		fc.require.InDelta(base, reading.Value, delta)
	}
	return nil
}

func (fc *FeatureContext) findSensor(name string) (driver.SensorPayload, error) {
	sensors, err := fc.sandbox.ListSensors()
	if err != nil {
		return driver.SensorPayload{}, err
	}
	for _, sensor := range sensors {
		if sensor.Name == name {
			return sensor, nil
		}
	}
	return driver.SensorPayload{}, fmt.Errorf("sensor %q is not registered", name)
}
