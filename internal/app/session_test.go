package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Makepad-fr/tada/internal/logger"
	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/persist"
	"github.com/Makepad-fr/tada/internal/store/memstore"
)

type SessionSuite struct {
	suite.Suite
	ctx   context.Context
	store *memstore.Store
	sess  *Session
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionSuite))
}

func (s *SessionSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memstore.New()
	s.sess = NewSession(s.store, logger.Discard())
	s.sess.Init(s.ctx)
}

func (s *SessionSuite) stored() string {
	v, ok, err := s.store.Get(s.ctx, persist.StorageKey)
	s.Require().NoError(err)
	s.Require().True(ok)
	return v
}

func (s *SessionSuite) TestEndToEnd() {
	it, ok, err := s.sess.Submit(s.ctx, "Buy milk")
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(1, it.ID())

	it, _, err = s.sess.Submit(s.ctx, "Walk dog")
	s.Require().NoError(err)
	s.Equal(2, it.ID())
	s.Equal(`[{"id":1,"text":"Buy milk"},{"id":2,"text":"Walk dog"}]`, s.stored())

	_, ok, err = s.sess.Check(s.ctx, 1)
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(`[{"id":2,"text":"Walk dog"}]`, s.stored())
	s.Equal("Buy milk removed from list.", s.sess.Status())
}

func (s *SessionSuite) TestSubmitTrimsAndIgnoresBlank() {
	_, ok, err := s.sess.Submit(s.ctx, "   \t ")
	s.Require().NoError(err)
	s.False(ok)
	s.Zero(s.sess.Len())
	_, found, _ := s.store.Get(s.ctx, persist.StorageKey)
	s.False(found, "nothing written for ignored input")

	it, ok, err := s.sess.Submit(s.ctx, "  Buy milk \n")
	s.Require().NoError(err)
	s.True(ok)
	s.Equal("Buy milk", it.Item())
	s.Equal("Buy milk added.", s.sess.Status())
}

func (s *SessionSuite) TestCheckUnknownIDIsNoop() {
	_, _, err := s.sess.Submit(s.ctx, "Buy milk")
	s.Require().NoError(err)
	before := s.stored()

	_, ok, err := s.sess.Check(s.ctx, 9)
	s.Require().NoError(err)
	s.False(ok)
	s.Equal(before, s.stored())
	s.Equal(1, s.sess.Len())
}

func (s *SessionSuite) TestIDRestartsWhenEmptied() {
	_, _, err := s.sess.Submit(s.ctx, "Buy milk")
	s.Require().NoError(err)
	_, _, err = s.sess.Check(s.ctx, 1)
	s.Require().NoError(err)

	it, _, err := s.sess.Submit(s.ctx, "Buy milk again")
	s.Require().NoError(err)
	s.Equal(1, it.ID())
}

func (s *SessionSuite) TestIDsStayUniqueAfterRemovingTail() {
	for _, t := range []string{"a", "b", "c"} {
		_, _, err := s.sess.Submit(s.ctx, t)
		s.Require().NoError(err)
	}
	_, _, err := s.sess.Check(s.ctx, 3)
	s.Require().NoError(err)
	_, _, err = s.sess.Check(s.ctx, 1)
	s.Require().NoError(err)

	it, _, err := s.sess.Submit(s.ctx, "d")
	s.Require().NoError(err)
	s.Equal(3, it.ID())
}

func (s *SessionSuite) TestClear() {
	asked := 0
	no := func() bool { asked++; return false }
	yes := func() bool { asked++; return true }

	cleared, err := s.sess.Clear(s.ctx, yes)
	s.Require().NoError(err)
	s.False(cleared)
	s.Zero(asked, "empty list is not confirmed")

	_, _, err = s.sess.Submit(s.ctx, "Buy milk")
	s.Require().NoError(err)

	cleared, err = s.sess.Clear(s.ctx, no)
	s.Require().NoError(err)
	s.False(cleared)
	s.Equal(1, s.sess.Len())

	cleared, err = s.sess.Clear(s.ctx, yes)
	s.Require().NoError(err)
	s.True(cleared)
	s.Empty(s.sess.Snapshot())
	s.Equal(`[]`, s.stored())
	s.Equal(2, asked)
}

func (s *SessionSuite) TestReloadFromStore() {
	_, _, err := s.sess.Submit(s.ctx, "Buy milk")
	s.Require().NoError(err)
	_, _, err = s.sess.Submit(s.ctx, "Walk dog")
	s.Require().NoError(err)

	next := NewSession(s.store, logger.Discard())
	next.Init(s.ctx)
	next.Init(s.ctx)
	s.Equal([]model.Item{model.NewItem(1, "Buy milk"), model.NewItem(2, "Walk dog")}, next.Snapshot())

	out, err := next.Export()
	s.Require().NoError(err)
	s.Equal(s.stored(), out)
}
