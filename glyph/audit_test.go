package glyph

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

// --- Test Suite Preparation ------------------------------------------------

// The bundled Go font carries no Myanmar private forms, which makes it a
// stable worst case for audit tests.
type AuditTestEnviron struct {
	suite.Suite
	font *sfnt.Font
}

// listen for 'go test' command --> run test methods
func TestAuditFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mmshape.glyph")
	defer teardown()
	suite.Run(t, new(AuditTestEnviron))
}

// run once, before test suite methods
func (env *AuditTestEnviron) SetupSuite() {
	f, err := sfnt.Parse(goregular.TTF)
	env.Require().NoError(err, "expected the bundled Go font to parse")
	env.font = f
}

// --- Tests -----------------------------------------------------------------

func (env *AuditTestEnviron) TestAuditChecksEveryContractPoint() {
	rep, err := Audit(env.font)
	env.Require().NoError(err)
	env.Equal(len(Coverage()), rep.Checked, "expected every contract point to be looked up")
}

func (env *AuditTestEnviron) TestAuditFindsGaps() {
	rep, err := Audit(env.font)
	env.Require().NoError(err)
	env.False(rep.Complete(), "a Latin font cannot cover the contract")
	env.Equal(Coverage(), rep.Missing, "expected every contract point to be missing, in order")
}

func (env *AuditTestEnviron) TestAuditReportsFontName() {
	rep, err := Audit(env.font)
	env.Require().NoError(err)
	env.Contains(rep.FontName, "Go", "expected the font's full name in the report")
}

func (env *AuditTestEnviron) TestAuditErrIsCoverageError() {
	rep, err := Audit(env.font)
	env.Require().NoError(err)
	var cerr *CoverageError
	env.Require().ErrorAs(rep.Err(), &cerr)
	env.Equal(rep.Missing, cerr.Missing)
	env.Contains(cerr.Error(), rep.FontName)
}

func (env *AuditTestEnviron) TestAuditNilFont() {
	_, err := Audit(nil)
	env.Error(err, "expected audit of a nil font to fail")
}
