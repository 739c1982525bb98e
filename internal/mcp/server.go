// Package mcp exposes the tracker to MCP clients over stdio. Every tool acts
// as the single user the server was started for.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"fittrack-backend-go/internal/services"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const summaryURI = "fittrack://summary"

type Server struct {
	mcpServer *mcp.Server
	tracker   *services.Tracker
	userID    int64

	mu      sync.Mutex
	session *services.WorkoutSession
}

// NewServer fails when userID does not name a stored user.
func NewServer(ctx context.Context, tracker *services.Tracker, userID int64, version string) (*Server, error) {
	if err := tracker.RequireUser(ctx, userID); err != nil {
		return nil, err
	}
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: "fittrack", Version: version}, nil)
	s := &Server{mcpServer: mcpServer, tracker: tracker, userID: userID}
	s.registerTools()
	s.registerResources()
	return s, nil
}

func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         summaryURI,
		Name:        "Today's summary",
		Description: "Macros against targets, medication adherence, current and next schedule block",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)
}

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	summary, err := s.tracker.Summary(ctx, s.userID)
	if err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal summary: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      summaryURI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
