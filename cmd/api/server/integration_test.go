package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"user-container-demo/cmd/api/di"
	grpcadapter "user-container-demo/internal/adapter/grpc"
	"user-container-demo/internal/config"
)

// ServerIntegrationTestSuite drives both front ends against one file backed store.
type ServerIntegrationTestSuite struct {
	suite.Suite
	httpClient *http.Client
	baseURL    string
	conn       *grpc.ClientConn
	cancel     context.CancelFunc
	done       chan error
}

func (s *ServerIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()
	cfg := &config.Config{
		DB: config.DatabaseConfig{
			Driver:       config.DriverSQLite,
			Path:         filepath.Join(s.T().TempDir(), "UserData.db"),
			MaxOpenConns: 4,
			MaxIdleConns: 2,
		},
		App:    config.AppConfig{GRPCPort: "50051", HTTPPort: "8080", ShutdownTimeoutSeconds: 2},
		Logger: config.LoggerConfig{Level: "info", SlowQuerySeconds: 1},
	}

	c, err := di.NewContainer(ctx, cfg, zaptest.NewLogger(s.T()))
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = c.Close() })
	s.Require().NoError(c.InitServers(ctx))

	grpcLis, err := net.Listen("tcp", "127.0.0.1:0")
	s.Require().NoError(err)
	httpLis, err := net.Listen("tcp", "127.0.0.1:0")
	s.Require().NoError(err)

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan error, 1)
	srv := New(c)
	go func() { s.done <- srv.Serve(runCtx, grpcLis, httpLis) }()

	s.baseURL = "http://" + httpLis.Addr().String()
	s.httpClient = &http.Client{Timeout: 10 * time.Second}

	s.conn, err = grpc.NewClient(grpcLis.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	s.Require().NoError(err)
}

func (s *ServerIntegrationTestSuite) TearDownSuite() {
	_ = s.conn.Close()
	s.cancel()
	select {
	case err := <-s.done:
		s.NoError(err)
	case <-time.After(5 * time.Second):
		s.Fail("server did not stop")
	}
}

func (s *ServerIntegrationTestSuite) postUser(first, last, email, age string) *http.Response {
	body, err := json.Marshal(map[string]string{
		"first_name": first, "last_name": last, "email": email, "age": age,
	})
	s.Require().NoError(err)

	resp, err := s.httpClient.Post(s.baseURL+"/v1/users", "application/json", bytes.NewReader(body))
	s.Require().NoError(err)
	return resp
}

func (s *ServerIntegrationTestSuite) render(kind string) string {
	resp, err := s.httpClient.Get(s.baseURL + "/v1/users/render?kind=" + kind)
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return string(body)
}

func (s *ServerIntegrationTestSuite) TestAddOverRESTVisibleOverGRPC() {
	resp := s.postUser("Grace", "Hopper", "grace@example.com", "85")
	resp.Body.Close()
	s.Equal(http.StatusCreated, resp.StatusCode)

	out := new(wrapperspb.StringValue)
	s.Require().NoError(s.conn.Invoke(context.Background(), grpcadapter.RenderUsersMethod, wrapperspb.String("linkedlist"), out))
	s.Contains(out.GetValue(), "Grace Hopper (grace@example.com), 85 years old")
}

func (s *ServerIntegrationTestSuite) TestAddOverGRPCVisibleOverREST() {
	in, err := structpb.NewStruct(map[string]any{
		"first_name": "Alan", "last_name": "Turing", "email": "alan@example.com", "age": 41,
	})
	s.Require().NoError(err)

	id := new(wrapperspb.Int64Value)
	s.Require().NoError(s.conn.Invoke(context.Background(), grpcadapter.AddUserMethod, in, id))

	s.Contains(s.render("dictionary"), fmt.Sprintf("Key: %d, Value: Alan Turing (alan@example.com), 41 years old", id.GetValue()))
}

func (s *ServerIntegrationTestSuite) TestDuplicateRejectedOnBothSurfaces() {
	resp := s.postUser("John", "Doe", "john.doe@example.com", "30")
	resp.Body.Close()
	s.Equal(http.StatusConflict, resp.StatusCode)

	in, err := structpb.NewStruct(map[string]any{
		"first_name": "John", "last_name": "Doe", "email": "john.doe@example.com", "age": "30",
	})
	s.Require().NoError(err)
	err = s.conn.Invoke(context.Background(), grpcadapter.AddUserMethod, in, new(wrapperspb.Int64Value))
	s.Equal(codes.AlreadyExists, status.Code(err))
}

func (s *ServerIntegrationTestSuite) TestInvalidInputRejected() {
	resp := s.postUser("", "Doe", "nobody@example.com", "-1")
	defer resp.Body.Close()
	s.Equal(http.StatusBadRequest, resp.StatusCode)

	s.NotContains(s.render("list"), "nobody@example.com")
}

func (s *ServerIntegrationTestSuite) TestQueueAndStackOrder() {
	queue := s.render("queue")
	stack := s.render("stack")

	s.Contains(queue, "1. John Doe (john.doe@example.com), 30 years old")
	s.NotContains(stack, "1. John Doe (john.doe@example.com), 30 years old")
}

func (s *ServerIntegrationTestSuite) TestHealth() {
	resp, err := s.httpClient.Get(s.baseURL + "/health")
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)
}

func TestServerIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration suite in short mode")
	}
	suite.Run(t, new(ServerIntegrationTestSuite))
}
