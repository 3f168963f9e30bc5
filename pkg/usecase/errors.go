package usecase

import "github.com/m-mizutani/goerr/v2"

var (
	ErrAssessmentNotFound = goerr.New("assessment not found")
	ErrProcessNotFound    = goerr.New("process impact not found")
)
