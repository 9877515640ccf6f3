package notificationpermission

import (
	"context"
	"errors"
	"testing"

	e "nutritrack/internal/core/domain/errors"
	"nutritrack/internal/core/domain/logging"
	"nutritrack/internal/core/domain/notification"

	"github.com/stretchr/testify/suite"
)

type testSuite struct {
	suite.Suite
	logger *logging.FakeLogger
	host   *notification.FakePermissionHost
}

func (suite *testSuite) SetupTest() {
	suite.logger = logging.NewFakeLogger()
	suite.host = notification.NewFakePermissionHost(notification.PermissionDefault)
}

func TestNotificationPermissionServices(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestGet() {
	result, err := NewGet(s.logger, s.host).Run(context.Background(), GetInput{})

	s.Nil(err)
	s.Equal(notification.PermissionDefault, result.Permission)
}

func (s *testSuite) TestRequest() {
	result, err := NewRequest(s.logger, s.host).Run(context.Background(), RequestInput{})

	s.Nil(err)
	s.Equal(notification.PermissionDefault, result.Permission)
	s.Equal(1, s.host.RequestCount)
}

func (s *testSuite) TestSet() {
	cases := []struct {
		input    string
		expected notification.Permission
	}{
		{input: "granted", expected: notification.PermissionGranted},
		{input: "denied", expected: notification.PermissionDenied},
		{input: "default", expected: notification.PermissionDefault},
	}

	for _, testcase := range cases {
		s.Run(testcase.input, func() {
			result, err := NewSet(s.logger, s.host).Run(context.Background(), SetInput{Permission: testcase.input})

			s.Nil(err)
			s.Equal(testcase.expected, result.Permission)
			s.Equal(testcase.expected, s.host.State)
		})
	}
}

func (s *testSuite) TestSetInvalid() {
	_, err := NewSet(s.logger, s.host).Run(context.Background(), SetInput{Permission: "maybe"})

	s.ErrorIs(err, e.ErrInvalidArgument)
	s.Equal(notification.PermissionDefault, s.host.State)
}

func (s *testSuite) TestHostError() {
	s.host.Error = errors.New("redis is down")

	_, err := NewGet(s.logger, s.host).Run(context.Background(), GetInput{})
	s.EqualError(err, "redis is down")

	_, err = NewRequest(s.logger, s.host).Run(context.Background(), RequestInput{})
	s.EqualError(err, "redis is down")

	_, err = NewSet(s.logger, s.host).Run(context.Background(), SetInput{Permission: "granted"})
	s.EqualError(err, "redis is down")

	s.Equal(3, s.logger.CountLevel(logging.ERROR))
}
