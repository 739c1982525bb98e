package mcp

import (
	"context"
	"errors"
	"fmt"

	"fittrack-backend-go/internal/services"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var errNoSession = errors.New("no workout in progress; call start_workout first")

func (s *Server) registerSessionTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "start_workout",
		Description: "Begin a guided workout session; set rows are pre-filled from the last session of the workout",
	}, s.handleStartWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "workout_move",
		Description: "Move the guided session to the next or previous exercise, or jump to one by position",
	}, s.handleWorkoutMove)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "record_set",
		Description: "Enter weight and reps for a set of the current exercise",
	}, s.handleRecordSet)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "finish_workout",
		Description: "Submit the guided session; sets missing weight or reps are dropped",
	}, s.handleFinishWorkout)
}

type startWorkoutInput struct {
	WorkoutID int64 `json:"workout_id" jsonschema:"workout id"`
}

type workoutMoveInput struct {
	To       string `json:"to" jsonschema:"next, previous or exercise"`
	Position int    `json:"position,omitempty" jsonschema:"1-based exercise position when to is exercise"`
}

type recordSetInput struct {
	SetNumber int      `json:"set_number" jsonschema:"1-based set number within the current exercise"`
	Weight    *float64 `json:"weight,omitempty" jsonschema:"weight lifted"`
	Reps      *int     `json:"reps,omitempty" jsonschema:"repetitions"`
}

type finishWorkoutInput struct {
	Notes string `json:"notes,omitempty" jsonschema:"session notes"`
}

type sessionSet struct {
	SetNumber int      `json:"set_number"`
	Weight    *float64 `json:"weight,omitempty"`
	Reps      *int     `json:"reps,omitempty"`
	Done      bool     `json:"done"`
}

type sessionOutput struct {
	WorkoutID  int64        `json:"workout_id"`
	Position   int          `json:"position"`
	Exercises  int          `json:"exercises"`
	Last       bool         `json:"last"`
	ExerciseID int64        `json:"exercise_id"`
	Exercise   string       `json:"exercise"`
	TargetReps string       `json:"target_reps"`
	Rest       string       `json:"rest"`
	Sets       []sessionSet `json:"sets"`
	SetsDone   int          `json:"sets_done"`
}

func describeSession(session *services.WorkoutSession) sessionOutput {
	current := session.Current()
	out := sessionOutput{
		WorkoutID:  session.WorkoutID,
		Position:   session.Index() + 1,
		Exercises:  len(session.Exercises),
		Last:       session.IsLast(),
		ExerciseID: current.ExerciseID,
		Exercise:   current.Exercise.Name,
		TargetReps: fmt.Sprintf("%d-%d", current.TargetRepsMin, current.TargetRepsMax),
		Rest:       services.RestLabel(current.RestSeconds),
		SetsDone:   session.Progress()[session.Index()].Done,
	}
	for _, set := range current.Sets {
		out.Sets = append(out.Sets, sessionSet{SetNumber: set.SetNumber, Weight: set.Weight, Reps: set.Reps, Done: set.Done})
	}
	return out
}

func (s *Server) handleStartWorkout(ctx context.Context, req *mcp.CallToolRequest, input startWorkoutInput) (*mcp.CallToolResult, sessionOutput, error) {
	session, err := s.tracker.StartWorkoutSession(ctx, s.userID, input.WorkoutID, true)
	if err != nil {
		return nil, sessionOutput{}, fmt.Errorf("start workout: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = session
	return nil, describeSession(session), nil
}

func (s *Server) handleWorkoutMove(ctx context.Context, req *mcp.CallToolRequest, input workoutMoveInput) (*mcp.CallToolResult, sessionOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil, sessionOutput{}, errNoSession
	}
	var err error
	switch input.To {
	case "next":
		err = s.session.Next()
	case "previous":
		err = s.session.Previous()
	case "exercise":
		err = s.session.Select(input.Position - 1)
	default:
		return nil, sessionOutput{}, fmt.Errorf("workout move: unknown direction %q", input.To)
	}
	if err != nil {
		return nil, sessionOutput{}, fmt.Errorf("workout move: %w", services.SessionError(err))
	}
	return nil, describeSession(s.session), nil
}

func (s *Server) handleRecordSet(ctx context.Context, req *mcp.CallToolRequest, input recordSetInput) (*mcp.CallToolResult, sessionOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil, sessionOutput{}, errNoSession
	}
	done := input.Weight != nil && input.Reps != nil
	if err := s.session.UpdateSet(input.SetNumber-1, input.Weight, input.Reps, done); err != nil {
		return nil, sessionOutput{}, fmt.Errorf("record set: %w", services.SessionError(err))
	}
	return nil, describeSession(s.session), nil
}

func (s *Server) handleFinishWorkout(ctx context.Context, req *mcp.CallToolRequest, input finishWorkoutInput) (*mcp.CallToolResult, idOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil, idOutput{}, errNoSession
	}
	if input.Notes != "" {
		if err := s.session.SetNotes(input.Notes); err != nil {
			return nil, idOutput{}, fmt.Errorf("finish workout: %w", services.SessionError(err))
		}
	}
	id, err := s.tracker.SubmitWorkoutSession(ctx, s.userID, s.session)
	if err != nil {
		return nil, idOutput{}, fmt.Errorf("finish workout: %w", err)
	}
	s.session = nil
	return nil, idOutput{ID: id, Message: fmt.Sprintf("Stored workout session %d", id)}, nil
}

// fillSession enters sets into a blank session. A zero set number takes the
// exercise's next unfilled row.
func fillSession(session *services.WorkoutSession, sets []setInput) error {
	next := map[int64]int{}
	for _, set := range sets {
		i := session.IndexOf(set.ExerciseID)
		if i < 0 {
			return fmt.Errorf("exercise %d: %w", set.ExerciseID, services.SessionError(services.ErrNotInWorkout))
		}
		if err := session.Select(i); err != nil {
			return services.SessionError(err)
		}
		row := set.SetNumber - 1
		if set.SetNumber == 0 {
			row = next[set.ExerciseID]
		}
		next[set.ExerciseID] = row + 1
		done := set.Weight != nil && set.Reps != nil
		if err := session.UpdateSet(row, set.Weight, set.Reps, done); err != nil {
			return fmt.Errorf("exercise %d set %d: %w", set.ExerciseID, row+1, services.SessionError(err))
		}
	}
	return nil
}
