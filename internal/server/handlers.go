package server

import (
	"net/http"
	"unicode/utf8"

	"github.com/labstack/echo/v4"

	"github.com/pubudushehan/Ontology-classifies-emotion/internal/domain"
	apperrors "github.com/pubudushehan/Ontology-classifies-emotion/internal/errors"
	"github.com/pubudushehan/Ontology-classifies-emotion/internal/platform/version"
)

// maxTextLength bounds classify input in runes; longer texts should be
// split by the caller.
const maxTextLength = 2000

type classifyRequest struct {
	Text string `json:"text"`
}

type classifyResponse struct {
	domain.Classification
	MatchedWords map[domain.Emotion][]string `json:"matched_words,omitempty"`
}

// handleClassify serves both GET (?text=) and POST ({"text": ...}) forms of
// the classify API.
func (s *Server) handleClassify(c echo.Context) error {
	text, err := extractText(c)
	if err != nil {
		return err
	}

	result, err := s.classifier.Classify(c.Request().Context(), text)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, classifyResponse{
		Classification: result,
		MatchedWords:   result.MatchedWords(),
	})
}

func extractText(c echo.Context) (string, error) {
	var text string
	if c.Request().Method == http.MethodGet {
		text = c.QueryParam("text")
	} else {
		var req classifyRequest
		if err := c.Bind(&req); err != nil {
			return "", apperrors.ValidationError("request body must be JSON with a text field")
		}
		text = req.Text
	}

	if n := utf8.RuneCountInString(text); n > maxTextLength {
		return "", apperrors.ValidationError("text too long").
			WithContext("length", n).
			WithContext("max_length", maxTextLength)
	}
	return text, nil
}

func (s *Server) handleVersion(c echo.Context) error {
	return c.JSON(http.StatusOK, version.Get())
}
