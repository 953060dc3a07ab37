package ddb_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-importer/internal/entities/ddb"
)

type DiceTestSuite struct {
	suite.Suite
}

func TestDiceSuite(t *testing.T) {
	suite.Run(t, new(DiceTestSuite))
}

func (s *DiceTestSuite) TestNotation() {
	testCases := []struct {
		name     string
		dice     *ddb.Dice
		expected string
	}{
		{name: "nil", dice: nil, expected: ""},
		{name: "dice string wins", dice: &ddb.Dice{DiceCount: 1, DiceValue: 4, DiceString: "2d6"}, expected: "2d6"},
		{name: "built from count and size", dice: &ddb.Dice{DiceCount: 3, DiceValue: 6}, expected: "3d6"},
		{name: "fixed bonus", dice: &ddb.Dice{DiceCount: 1, DiceValue: 4, FixedValue: 2}, expected: "1d4+2"},
		{name: "no dice", dice: &ddb.Dice{}, expected: ""},
		{name: "no die size", dice: &ddb.Dice{DiceCount: 2}, expected: ""},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().Equal(tc.expected, tc.dice.Notation())
		})
	}
}
