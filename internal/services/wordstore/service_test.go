package wordstore

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordlegame/internal/model"
	"github.com/mcoot/wordlegame/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	dir     string
	logs    *bytes.Buffer
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.dir = s.T().TempDir()
	logger, logs := testutil.BufferLogger()
	s.logs = logs
	s.service = New(model.DefaultConfig(), logger)
}

func (s *ServiceSuite) writeList(name, content string) {
	err := os.WriteFile(filepath.Join(s.dir, name), []byte(content), 0o644)
	s.Require().NoError(err)
}

func (s *ServiceSuite) TestFileNameFollowsConvention() {
	s.Equal("words_en.txt", s.service.FileName(model.LangEn))
	s.Equal("words_es.txt", s.service.FileName(model.LangEs))
	s.Equal(filepath.Join("data", "words_es.txt"), s.service.Path("data", model.LangEs))
}

func (s *ServiceSuite) TestGetWordsReadsEachLine() {
	s.writeList("words_en.txt", "light\nnight\nmight\n")

	words := s.service.GetWords(s.dir, model.LangEn)
	s.Equal([]string{"light", "night", "might"}, words)
}

func (s *ServiceSuite) TestGetWordsPicksLanguageFile() {
	s.writeList("words_en.txt", "light\n")
	s.writeList("words_es.txt", "gatos\nperro\n")

	s.Equal([]string{"gatos", "perro"}, s.service.GetWords(s.dir, model.LangEs))
}

func (s *ServiceSuite) TestGetWordsKeepsLinesVerbatim() {
	s.writeList("words_en.txt", "Light\n  pad \nab\n\nlonger\r\nlast")

	words := s.service.GetWords(s.dir, model.LangEn)
	s.Equal([]string{"Light", "  pad ", "ab", "", "longer", "last"}, words)
}

func (s *ServiceSuite) TestGetWordsEmptyFile() {
	s.writeList("words_en.txt", "")

	words := s.service.GetWords(s.dir, model.LangEn)
	s.NotNil(words)
	s.Empty(words)
	s.Empty(s.logs.String())
}

func (s *ServiceSuite) TestGetWordsMissingFolderReturnsEmpty() {
	words := s.service.GetWords(filepath.Join(s.dir, "nope"), model.LangEn)

	s.NotNil(words)
	s.Empty(words)
	s.Contains(s.logs.String(), "failed to load word list")
	s.Contains(s.logs.String(), `"lang":"en"`)
}

func (s *ServiceSuite) TestGetWordsInvalidEncodingReturnsEmpty() {
	s.writeList("words_es.txt", "ni\xf1os\n")

	words := s.service.GetWords(s.dir, model.LangEs)
	s.Empty(words)
	s.Contains(s.logs.String(), "not valid UTF-8")
}

func (s *ServiceSuite) TestGetWordsUnicode() {
	s.writeList("words_es.txt", "niños\naño\n")

	s.Equal([]string{"niños", "año"}, s.service.GetWords(s.dir, model.LangEs))
}

func (s *ServiceSuite) TestLoadFileReturnsError() {
	_, err := s.service.LoadFile(filepath.Join(s.dir, "missing.txt"))
	s.ErrorIs(err, os.ErrNotExist)
}
