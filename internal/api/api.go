package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vets2tech/onboard/internal/account"
	"github.com/vets2tech/onboard/internal/challenge"
	"github.com/vets2tech/onboard/internal/cohort"
	"github.com/vets2tech/onboard/internal/domain"
	"github.com/vets2tech/onboard/internal/errors"
	"github.com/vets2tech/onboard/internal/recommend"
	"github.com/vets2tech/onboard/internal/result"
	"github.com/vets2tech/onboard/internal/study"
)

type Config struct {
	Engine    *gin.Engine
	Account   *account.Service
	Cohorts   *cohort.Service
	Recommend *recommend.Service
	Challenge *challenge.Service
	Results   *result.Service
	Study     *study.Service
	Tokens    *account.TokenSigner
}

type API struct {
	account   *account.Service
	cohorts   *cohort.Service
	recommend *recommend.Service
	challenge *challenge.Service
	results   *result.Service
	study     *study.Service
}

func New(c Config) *API {
	a := &API{
		account:   c.Account,
		cohorts:   c.Cohorts,
		recommend: c.Recommend,
		challenge: c.Challenge,
		results:   c.Results,
		study:     c.Study,
	}

	v1 := c.Engine.Group("/v1")

	v1.POST("/accounts/register", a.Register)
	v1.POST("/accounts/login", a.Login)
	v1.POST("/accounts/password/forgot", a.ForgotPassword)
	v1.POST("/accounts/password/reset", a.ResetPassword)
	v1.GET("/cohorts", a.ListCohorts)
	v1.GET("/study/resources", a.ListStudyResources)
	v1.GET("/study/resources/:title", a.DescribeStudyResource)

	authed := v1.Group("", AuthRequired(c.Tokens))
	authed.GET("/quiz", a.QuizQuestions)
	authed.POST("/quiz/answers", a.SubmitQuiz)
	authed.GET("/challenge/:cohort", a.StartChallenge)
	authed.POST("/challenge/answers", a.SubmitChallenge)

	admin := authed.Group("/admin", AdminRequired())
	admin.GET("/users", a.ListUsers)
	admin.PUT("/users/:email", a.UpdateUser)
	admin.DELETE("/users/:email", a.DeleteUser)
	admin.PUT("/cohorts/:name", a.SetCohortEnabled)
	admin.GET("/results/quiz", a.ListQuizResults)
	admin.GET("/results/challenge", a.ListChallengeResults)

	return a
}

func abortWithError(c *gin.Context, err error) {
	e := errors.Convert(err)
	c.AbortWithStatusJSON(e.HTTPStatusCode(), e)
}

type userDTO struct {
	Email       string `json:"email"`
	FullName    string `json:"full_name"`
	StudentType string `json:"student_type"`
	Admin       bool   `json:"admin"`
}

func toUserDTO(u domain.User) userDTO {
	return userDTO{
		Email:       u.Email,
		FullName:    u.FullName,
		StudentType: string(u.StudentType),
		Admin:       u.Admin,
	}
}

type registerRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FullName    string `json:"full_name"`
	StudentType string `json:"student_type"`
}

func (a *API) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, errors.New(errors.CodeInvalidArgument, errors.WithCause(err)))
		return
	}

	u, err := a.account.Register(c.Request.Context(), account.RegisterRequest{
		Email:       req.Email,
		Password:    req.Password,
		FullName:    req.FullName,
		StudentType: domain.StudentType(req.StudentType),
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": toUserDTO(*u)})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (a *API) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, errors.New(errors.CodeInvalidArgument, errors.WithCause(err)))
		return
	}

	resp, err := a.account.Login(c.Request.Context(), account.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": resp.Token,
		"user":  toUserDTO(resp.User),
	})
}

func (a *API) ForgotPassword(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, errors.New(errors.CodeInvalidArgument, errors.WithCause(err)))
		return
	}

	if err := a.account.RequestPasswordReset(c.Request.Context(), account.RequestPasswordResetRequest{
		Email: req.Email,
	}); err != nil {
		abortWithError(c, err)
		return
	}

	// Always accepted, whether or not the address is registered.
	c.Status(http.StatusAccepted)
}

func (a *API) ResetPassword(c *gin.Context) {
	var req struct {
		Token    string `json:"token"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, errors.New(errors.CodeInvalidArgument, errors.WithCause(err)))
		return
	}

	if err := a.account.ResetPassword(c.Request.Context(), account.ResetPasswordRequest{
		Token:    req.Token,
		Password: req.Password,
	}); err != nil {
		abortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (a *API) ListCohorts(c *gin.Context) {
	visibility, err := a.cohorts.ListVisibility(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}

	type cohortDTO struct {
		Name    string `json:"name"`
		Enabled bool   `json:"enabled"`
	}

	resp := make([]cohortDTO, 0, len(visibility))
	for _, v := range visibility {
		resp = append(resp, cohortDTO{Name: string(v.Cohort), Enabled: v.Enabled})
	}

	c.JSON(http.StatusOK, gin.H{"cohorts": resp})
}

type studyResourceDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"resource_url"`
	Skills      string `json:"skills"`
}

func toStudyResourceDTO(r domain.StudyResource) studyResourceDTO {
	return studyResourceDTO{
		Title:       r.Title,
		Description: r.Description,
		URL:         r.URL,
		Skills:      r.Skills,
	}
}

func (a *API) ListStudyResources(c *gin.Context) {
	resources := a.study.List()

	resp := make([]studyResourceDTO, 0, len(resources))
	for _, r := range resources {
		resp = append(resp, toStudyResourceDTO(r))
	}

	c.JSON(http.StatusOK, gin.H{"resources": resp})
}

func (a *API) DescribeStudyResource(c *gin.Context) {
	r, err := a.study.Describe(c.Param("title"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, toStudyResourceDTO(*r))
}

func (a *API) QuizQuestions(c *gin.Context) {
	type choiceDTO struct {
		Category string `json:"category"`
		Label    string `json:"label"`
	}
	type questionDTO struct {
		QuestionID string      `json:"question_id"`
		Prompt     string      `json:"prompt"`
		Choices    []choiceDTO `json:"choices"`
	}

	questions := a.recommend.Questions()
	resp := make([]questionDTO, 0, len(questions))
	for _, q := range questions {
		dto := questionDTO{
			QuestionID: q.QuestionID,
			Prompt:     q.Prompt,
			Choices:    make([]choiceDTO, 0, len(q.Choices)),
		}
		for _, ch := range q.Choices {
			dto.Choices = append(dto.Choices, choiceDTO{Category: string(ch.Category), Label: ch.Label})
		}
		resp = append(resp, dto)
	}

	c.JSON(http.StatusOK, gin.H{"questions": resp})
}

type submitQuizRequest struct {
	Answers map[string]string `json:"answers"`
}

func (a *API) SubmitQuiz(c *gin.Context) {
	var req submitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, errors.New(errors.CodeInvalidArgument, errors.WithCause(err)))
		return
	}

	answers := make(map[string]domain.Category, len(req.Answers))
	for id, cat := range req.Answers {
		answers[id] = domain.Category(cat)
	}

	rec, err := a.recommend.Recommend(c.Request.Context(), recommend.RecommendRequest{
		Email:      Claims(c).Email,
		Answers:    answers,
		SubmitTime: time.Now(),
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tally": gin.H{
			"cloud":  rec.Tally.Cloud,
			"server": rec.Tally.Server,
			"cyber":  rec.Tally.Cyber,
		},
		"cohorts": rec.Cohorts,
		"message": rec.Message,
	})
}

func (a *API) StartChallenge(c *gin.Context) {
	ss, err := a.challenge.Build(c.Request.Context(), challenge.BuildRequest{
		Cohort: c.Param("cohort"),
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	type optionDTO struct {
		Key  string `json:"key"`
		Text string `json:"text"`
	}
	type questionDTO struct {
		QuestionID string      `json:"question_id"`
		Prompt     string      `json:"prompt"`
		Options    []optionDTO `json:"options"`
	}

	// The answer key stays server-side; only the shuffled options go out.
	questions := make([]questionDTO, 0, len(ss.Questions))
	for _, q := range ss.Questions {
		dto := questionDTO{
			QuestionID: q.QuestionID,
			Prompt:     q.Prompt,
			Options:    make([]optionDTO, 0, len(q.Options)),
		}
		for _, opt := range q.Options {
			dto.Options = append(dto.Options, optionDTO{Key: opt.Key, Text: opt.Text})
		}
		questions = append(questions, dto)
	}

	c.JSON(http.StatusOK, gin.H{
		"session_id": ss.SessionID,
		"cohort":     ss.Cohort,
		"questions":  questions,
	})
}

type submitChallengeRequest struct {
	SessionID string            `json:"session_id"`
	Answers   map[string]string `json:"answers"`
}

func (a *API) SubmitChallenge(c *gin.Context) {
	var req submitChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, errors.New(errors.CodeInvalidArgument, errors.WithCause(err)))
		return
	}

	result, err := a.challenge.Evaluate(c.Request.Context(), challenge.EvaluateRequest{
		SessionID:  req.SessionID,
		Email:      Claims(c).Email,
		Answers:    req.Answers,
		SubmitTime: time.Now(),
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"score":   result.Score,
		"total":   result.Total,
		"percent": result.Percent(),
	})
}

func (a *API) ListUsers(c *gin.Context) {
	users, err := a.account.ListUsers(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}

	resp := make([]userDTO, 0, len(users))
	for _, u := range users {
		resp = append(resp, toUserDTO(u))
	}

	c.JSON(http.StatusOK, gin.H{"users": resp})
}

type updateUserRequest struct {
	FullName    string `json:"full_name"`
	StudentType string `json:"student_type"`
}

func (a *API) UpdateUser(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, errors.New(errors.CodeInvalidArgument, errors.WithCause(err)))
		return
	}

	if err := a.account.UpdateUser(c.Request.Context(), account.UpdateUserRequest{
		Email:       c.Param("email"),
		FullName:    req.FullName,
		StudentType: domain.StudentType(req.StudentType),
	}); err != nil {
		abortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (a *API) DeleteUser(c *gin.Context) {
	if err := a.account.DeleteUser(c.Request.Context(), account.DeleteUserRequest{
		Email: c.Param("email"),
	}); err != nil {
		abortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (a *API) SetCohortEnabled(c *gin.Context) {
	var req struct {
		Enabled bool `json:"enabled"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, errors.New(errors.CodeInvalidArgument, errors.WithCause(err)))
		return
	}

	if err := a.cohorts.SetEnabled(c.Request.Context(), cohort.SetEnabledRequest{
		Cohort:  domain.Cohort(c.Param("name")),
		Enabled: req.Enabled,
	}); err != nil {
		abortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (a *API) ListQuizResults(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		abortWithError(c, errors.New(errors.CodeInvalidArgument, errors.WithMessagef("email query parameter is required")))
		return
	}

	records, err := a.results.ListRecommendations(c.Request.Context(), result.ListRequest{Email: email})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": records})
}

func (a *API) ListChallengeResults(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		abortWithError(c, errors.New(errors.CodeInvalidArgument, errors.WithMessagef("email query parameter is required")))
		return
	}

	records, err := a.results.ListChallengeResults(c.Request.Context(), result.ListRequest{Email: email})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": records})
}
