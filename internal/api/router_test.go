package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/smsdesk/smsdesk/internal/api/dto"
	v1 "github.com/smsdesk/smsdesk/internal/api/v1"
	"github.com/smsdesk/smsdesk/internal/cache"
	"github.com/smsdesk/smsdesk/internal/domain/contact"
	ierr "github.com/smsdesk/smsdesk/internal/errors"
	"github.com/smsdesk/smsdesk/internal/service"
	"github.com/smsdesk/smsdesk/internal/testutil"
	"github.com/smsdesk/smsdesk/internal/types"
	"github.com/stretchr/testify/suite"
)

type RouterSuite struct {
	testutil.BaseServiceTestSuite
	router *gin.Engine
	token  string
}

func TestRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()

	stores := s.GetStores()
	params := service.ServiceParams{
		Logger:           s.GetLogger(),
		Config:           s.GetConfig(),
		DB:               s.GetDB(),
		Phone:            s.GetPhone(),
		RBAC:             s.GetRBAC(),
		Auth:             s.GetAuth(),
		ContactRepo:      stores.ContactRepo,
		GroupRepo:        stores.GroupRepo,
		UserRepo:         stores.UserRepo,
		ScheduledSMSRepo: stores.ScheduledSMSRepo,
	}

	handlers := Handlers{
		Health:       v1.NewHealthHandler(s.GetLogger()),
		Auth:         v1.NewAuthHandler(service.NewAuthService(params), s.GetLogger()),
		Contact:      v1.NewContactHandler(service.NewContactService(params), s.GetLogger()),
		ScheduledSMS: v1.NewScheduledSMSHandler(service.NewScheduledSMSService(params), s.GetLogger()),
	}

	s.router = NewRouter(handlers, RouterParams{
		Config:    s.GetConfig(),
		Logger:    s.GetLogger(),
		Auth:      s.GetAuth(),
		UserRepo:  stores.UserRepo,
		UserCache: cache.NewInMemoryCache(s.GetConfig()),
	})

	var err error
	s.token, err = s.GetAuth().GenerateToken(s.User().ID)
	s.Require().NoError(err)
}

func (s *RouterSuite) do(req *http.Request) *httptest.ResponseRecorder {
	if s.token != "" && req.Header.Get(types.HeaderAuthorization) == "" {
		req.Header.Set(types.HeaderAuthorization, "Bearer "+s.token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *RouterSuite) jsonRequest(method, path string, body any) *http.Request {
	payload, err := json.Marshal(body)
	s.Require().NoError(err)
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func (s *RouterSuite) formRequest(method, path string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func (s *RouterSuite) decodeResult(w *httptest.ResponseRecorder) types.Result {
	var result types.Result
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &result))
	return result
}

func (s *RouterSuite) contactsPath() string {
	return "/v1/groups/" + s.UserGroup().ID + "/contacts"
}

func (s *RouterSuite) createContact(name, mobile string) string {
	w := s.do(s.jsonRequest(http.MethodPost, s.contactsPath(), dto.CreateContactRequest{Name: name, Mobile: mobile}))
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var body struct {
		Data contact.Contact `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body.Data.ID
}

func (s *RouterSuite) TestHealth() {
	w := s.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	s.Equal(http.StatusOK, w.Code)
}

func (s *RouterSuite) TestAuthentication() {
	s.Run("missing_token", func() {
		req := httptest.NewRequest(http.MethodGet, s.contactsPath(), nil)
		req.Header.Set(types.HeaderAuthorization, "Token abc")
		w := s.do(req)
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("login_issues_usable_token", func() {
		w := s.do(s.jsonRequest(http.MethodPost, "/v1/auth/login", dto.LoginRequest{
			Email:    s.User().Email,
			Password: testutil.TestPassword,
		}))
		s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

		var resp dto.AuthResponse
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))

		req := httptest.NewRequest(http.MethodGet, s.contactsPath(), nil)
		req.Header.Set(types.HeaderAuthorization, "Bearer "+resp.Token)
		s.Equal(http.StatusOK, s.do(req).Code)
	})

	s.Run("wrong_password", func() {
		w := s.do(s.jsonRequest(http.MethodPost, "/v1/auth/login", dto.LoginRequest{
			Email:    s.User().Email,
			Password: "wrong",
		}))
		s.Equal(http.StatusForbidden, w.Code)
		s.Equal("Invalid email or password", s.decodeResult(w).Message)
	})
}

func (s *RouterSuite) TestCreateContact() {
	s.Run("success", func() {
		w := s.do(s.jsonRequest(http.MethodPost, s.contactsPath(), dto.CreateContactRequest{
			Name:   "Jane",
			Mobile: "0712345678",
		}))
		s.Equal(http.StatusCreated, w.Code)

		result := s.decodeResult(w)
		s.Equal(types.OutcomeSuccess, result.Outcome)
		s.Equal("The contact has been created successfully.", result.Message)
		s.Equal("/groups/"+s.UserGroup().ID+"/contacts", result.RedirectTarget)
	})

	s.Run("landline_from_form_returns_to_create_form", func() {
		w := s.do(s.formRequest(http.MethodPost, s.contactsPath(), url.Values{
			"name":   {"Office"},
			"mobile": {"020 2012345"},
		}))
		s.Equal(http.StatusUnprocessableEntity, w.Code)

		result := s.decodeResult(w)
		s.Equal(types.OutcomeFailure, result.Outcome)
		s.Equal("020 2012345 is not a valid mobile number.", result.Message)
		s.Equal("/groups/"+s.UserGroup().ID+"/contacts/create", result.RedirectTarget)
	})

	s.Run("duplicate", func() {
		w := s.do(s.jsonRequest(http.MethodPost, s.contactsPath(), dto.CreateContactRequest{
			Name:   "Jane",
			Mobile: "+254712345678",
		}))
		s.Equal(http.StatusConflict, w.Code)
		s.Equal("+254712345678 already exists in this group.", s.decodeResult(w).Message)
	})

	s.Run("unknown_group", func() {
		w := s.do(s.jsonRequest(http.MethodPost, "/v1/groups/grp_missing/contacts", dto.CreateContactRequest{
			Name:   "Jane",
			Mobile: "0712345678",
		}))
		s.Equal(http.StatusNotFound, w.Code)
	})
}

func (s *RouterSuite) TestUpdateAndDeleteContact() {
	id := s.createContact("Jane", "0712345678")
	itemPath := s.contactsPath() + "/" + id

	w := s.do(s.jsonRequest(http.MethodPatch, itemPath, dto.UpdateContactRequest{Name: "Jane", Mobile: "???"}))
	s.Equal(http.StatusUnprocessableEntity, w.Code)
	s.Equal("/groups/"+s.UserGroup().ID+"/contacts/"+id+"/edit", s.decodeResult(w).RedirectTarget)

	w = s.do(s.jsonRequest(http.MethodPut, itemPath, dto.UpdateContactRequest{Name: "Jane W", Mobile: "0722000111"}))
	s.Equal(http.StatusOK, w.Code)
	result := s.decodeResult(w)
	s.Equal("The contact has been updated successfully.", result.Message)
	s.Equal("/groups/"+s.UserGroup().ID+"/contacts", result.RedirectTarget)

	w = s.do(httptest.NewRequest(http.MethodGet, itemPath+"/edit", nil))
	s.Equal(http.StatusOK, w.Code)
	var form dto.ContactFormResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &form))
	s.Equal("+254722000111", form.Contact.Mobile)

	req := httptest.NewRequest(http.MethodDelete, itemPath, nil)
	req.Header.Set(types.HeaderReferer, "https://app.example.com/groups")
	w = s.do(req)
	s.Equal(http.StatusOK, w.Code)
	result = s.decodeResult(w)
	s.Equal("The contact has been deleted successfully.", result.Message)
	s.Equal("/groups/"+s.UserGroup().ID+"/contacts", result.RedirectTarget)

	w = s.do(httptest.NewRequest(http.MethodDelete, itemPath, nil))
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal(types.RedirectBack, s.decodeResult(w).RedirectTarget)
}

func (s *RouterSuite) TestBulkDelete() {
	a := s.createContact("A", "0712345678")
	b := s.createContact("B", "0722000111")
	keep := s.createContact("C", "0733444555")

	w := s.do(s.formRequest(http.MethodPost, "/v1/contacts/bulk-delete", url.Values{"rowCheck": {a, b}}))
	s.Equal(http.StatusOK, w.Code)
	s.Equal("The contacts have been deleted successfully.", s.decodeResult(w).Message)

	w = s.do(httptest.NewRequest(http.MethodGet, s.contactsPath(), nil))
	s.Require().Equal(http.StatusOK, w.Code)
	var list struct {
		Contacts []contact.ContactWithOwner `json:"contacts"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &list))
	s.Len(list.Contacts, 1)
	s.Equal(keep, list.Contacts[0].ID)

	w = s.do(s.jsonRequest(http.MethodDelete, "/v1/contacts/bulk-delete", map[string][]string{"rowCheck": {keep}}))
	s.Equal(http.StatusOK, w.Code)
}

func (s *RouterSuite) TestBulkDeleteBracketedFormField() {
	a := s.createContact("A", "0712345678")
	b := s.createContact("B", "0722000111")
	keep := s.createContact("C", "0733444555")

	w := s.do(s.formRequest(http.MethodPost, "/v1/contacts/bulk-delete", url.Values{"rowCheck[]": {a, b}}))
	s.Equal(http.StatusOK, w.Code)
	s.Equal("The contacts have been deleted successfully.", s.decodeResult(w).Message)

	for _, id := range []string{a, b} {
		_, err := s.GetStores().ContactRepo.Get(context.Background(), id)
		s.True(ierr.IsNotFound(err), "contact %s should be gone", id)
	}
	_, err := s.GetStores().ContactRepo.Get(context.Background(), keep)
	s.NoError(err)
}

func (s *RouterSuite) TestDownloadSample() {
	w := s.do(httptest.NewRequest(http.MethodGet, "/v1/contacts/sample", nil))
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Header().Get("Content-Disposition"), "sample-contacts.csv")
	s.Contains(w.Body.String(), "name,mobile")
}

func (s *RouterSuite) TestScheduledSMS() {
	w := s.do(httptest.NewRequest(http.MethodGet, "/v1/scheduled-sms", nil))
	s.Equal(http.StatusOK, w.Code)

	w = s.do(httptest.NewRequest(http.MethodGet, "/v1/scheduled-sms/ssms_missing", nil))
	s.Equal(http.StatusNotFound, w.Code)
}
