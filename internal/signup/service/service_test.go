package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/sync/errgroup"

	"enroll/internal/signup"
	"enroll/internal/signup/service"
	"enroll/internal/signup/service/mocks"
	"enroll/internal/signup/state"
	"enroll/pkg/platform/sentinel"
)

type ServiceSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	gateway *mocks.MockGateway
	store   *state.Store
	service *service.Service
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.gateway = mocks.NewMockGateway(s.ctrl)
	s.store = state.NewStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.service = service.New(s.gateway, s.store, logger, nil)
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) TestSubmitSuccess() {
	ctx := context.Background()

	s.gateway.EXPECT().
		SignUp(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p signup.Payload) (signup.Token, error) {
			s.Equal("Stojan", p.Name)
			s.Equal(signup.KindEmail, p.Identity.Kind())
			s.Equal("stojan@example.com", p.Identity.Value())
			return signup.Token{Value: "abc"}, nil
		})

	res, err := s.service.Submit(ctx, "Stojan", "stojan@example.com", signup.KindEmail)
	s.Require().NoError(err)

	token, ok := res.Value()
	s.Require().True(ok)
	s.Equal(signup.Token{Value: "abc"}, token)

	form := s.store.Snapshot()
	s.False(form.Busy)
	s.Empty(form.Message)
	s.Empty(form.Name.Error)
	s.Empty(form.ID.Error)
}

func (s *ServiceSuite) TestSubmitLocalValidationFailure() {
	ctx := context.Background()

	// The gateway must never be invoked when local validation fails.
	s.gateway.EXPECT().SignUp(gomock.Any(), gomock.Any()).Times(0)

	res, err := s.service.Submit(ctx, "", "bad", signup.KindEmail)
	s.Require().NoError(err)

	submitErr, failed := res.Error()
	s.Require().True(failed)

	var validation *signup.ValidationError
	s.Require().ErrorAs(submitErr, &validation)
	s.Len(validation.Fields, 2)
	s.Equal(signup.FieldName, validation.Fields[0].Field)
	s.Equal(signup.FieldEmail, validation.Fields[1].Field)

	form := s.store.Snapshot()
	s.False(form.Busy)
	s.Equal(signup.MsgNameBlank, form.Name.Error)
	s.Equal(signup.MsgEmailNoAt, form.ID.Error)
}

func (s *ServiceSuite) TestSubmitRemoteStructuredErrors() {
	ctx := context.Background()

	s.Run("recognized field descriptors become field errors", func() {
		s.gateway.EXPECT().SignUp(gomock.Any(), gomock.Any()).Return(signup.Token{}, &service.RemoteError{
			Message: "dup",
			Fields: []service.RemoteFieldError{
				{Field: "email", Messages: []string{"taken"}},
			},
		})

		res, err := s.service.Submit(ctx, "Stojan", "stojan@example.com", signup.KindEmail)
		s.Require().NoError(err)

		submitErr, failed := res.Error()
		s.Require().True(failed)

		var validation *signup.ValidationError
		s.Require().ErrorAs(submitErr, &validation)
		s.Equal("taken", validation.FirstMessage(signup.FieldEmail))

		form := s.store.Snapshot()
		s.Equal("taken", form.ID.Error)
		s.Empty(form.Name.Error)
		s.Empty(form.Message)
	})

	s.Run("unrecognized descriptors are dropped, falling back to an http error", func() {
		s.gateway.EXPECT().SignUp(gomock.Any(), gomock.Any()).Return(signup.Token{}, &service.RemoteError{
			Message: "dup",
			Fields: []service.RemoteFieldError{
				{Field: "username", Messages: []string{"taken"}},
			},
		})

		res, err := s.service.Submit(ctx, "Stojan", "stojan@example.com", signup.KindEmail)
		s.Require().NoError(err)

		submitErr, _ := res.Error()
		var httpErr *signup.HTTPError
		s.Require().ErrorAs(submitErr, &httpErr)
		s.Equal("dup", httpErr.Message)

		form := s.store.Snapshot()
		s.Equal("dup", form.Message)
		s.Empty(form.ID.Error)
	})

	s.Run("descriptor-free rejection becomes an http error", func() {
		s.gateway.EXPECT().SignUp(gomock.Any(), gomock.Any()).Return(signup.Token{}, &service.RemoteError{
			Message: "service unavailable",
		})

		res, err := s.service.Submit(ctx, "Stojan", "stojan@example.com", signup.KindEmail)
		s.Require().NoError(err)

		submitErr, _ := res.Error()
		var httpErr *signup.HTTPError
		s.Require().ErrorAs(submitErr, &httpErr)
		s.Equal("service unavailable", httpErr.Message)
	})
}

func (s *ServiceSuite) TestSubmitConnectivityFault() {
	ctx := context.Background()
	cause := errors.New("dial tcp: connection refused")

	s.gateway.EXPECT().SignUp(gomock.Any(), gomock.Any()).Return(signup.Token{}, cause)

	res, err := s.service.Submit(ctx, "Stojan", "+123456", signup.KindPhone)
	s.Require().NoError(err)

	submitErr, failed := res.Error()
	s.Require().True(failed)

	var conn *signup.ConnectivityError
	s.Require().ErrorAs(submitErr, &conn)
	s.ErrorIs(conn, cause)

	form := s.store.Snapshot()
	s.False(form.Busy)
	s.Equal(state.MsgConnectivity, form.Message)
	s.Empty(form.Name.Error)
	s.Empty(form.ID.Error)
}

func (s *ServiceSuite) TestSubmitPublishesBusyBeforeTerminalState() {
	ctx := context.Background()
	ch, cancel := s.store.Subscribe()
	defer cancel()

	s.gateway.EXPECT().SignUp(gomock.Any(), gomock.Any()).Return(signup.Token{Value: "abc"}, nil)

	_, err := s.service.Submit(ctx, "Stojan", "stojan@example.com", signup.KindEmail)
	s.Require().NoError(err)

	busy := <-ch
	s.True(busy.Busy)
	s.Equal("Stojan", busy.Name.Value)

	terminal := <-ch
	s.False(terminal.Busy)
}

func (s *ServiceSuite) TestOverlappingSubmissionsRejected() {
	ctx := context.Background()

	entered := make(chan struct{})
	release := make(chan struct{})
	s.gateway.EXPECT().
		SignUp(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, signup.Payload) (signup.Token, error) {
			close(entered)
			<-release
			return signup.Token{Value: "abc"}, nil
		})

	var g errgroup.Group
	g.Go(func() error {
		res, err := s.service.Submit(ctx, "Stojan", "stojan@example.com", signup.KindEmail)
		if err != nil {
			return err
		}
		if res.IsErr() {
			return errors.New("first submission should succeed")
		}
		return nil
	})

	<-entered
	_, err := s.service.Submit(ctx, "Stojan", "stojan@example.com", signup.KindEmail)
	s.Require().ErrorIs(err, sentinel.ErrInFlight)

	close(release)
	s.Require().NoError(g.Wait())

	// The flag frees once the first submission settles.
	s.gateway.EXPECT().SignUp(gomock.Any(), gomock.Any()).Return(signup.Token{Value: "def"}, nil)
	res, err := s.service.Submit(ctx, "Stojan", "stojan@example.com", signup.KindEmail)
	s.Require().NoError(err)
	s.True(res.IsOk())
}
