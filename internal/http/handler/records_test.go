package handler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	"ethstore/internal/core"
	"ethstore/internal/http/handler"
	"ethstore/internal/http/handler/fake"
	"ethstore/internal/http/payload"
	"ethstore/internal/model"
	"ethstore/internal/repository"
	"ethstore/pkg/primitives"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

const recordBody = `{
	"address": "0x92be2f02c94d214f8d38ece700385471d9a66c0a",
	"u256": "9999999999999999999999999999999999999999999999",
	"block_number": 1,
	"tx_hash": "0xb44c4e99de65f6a5f4a2162a76241cf858c09ff218f3023a3ac03acc17fea885",
	"optional_address": null,
	"optional_u256": null
}`

var _ = Describe("RecordHandler", func() {
	var (
		rh            *handler.RecordHandler
		fakeService   *fake.RecordService
		fakeAuth      *fake.Authenticator
		fakeValidator *fake.RequestValidator
		w             *httptest.ResponseRecorder
		req           *http.Request
		testToken     string
		fakeErr       error
	)

	BeforeEach(func() {
		testToken = "test-token"
		fakeErr = errors.New("fake-error")
		fakeService = new(fake.RecordService)
		fakeAuth = new(fake.Authenticator)
		fakeAuth.AuthenticateReturns(testToken, nil)
		fakeValidator = new(fake.RequestValidator)
		fakeValidator.DecodeJSONPayloadStub = payload.DecodeValidator{}.DecodeJSONPayload

		w = httptest.NewRecorder()
		rh = handler.NewRecordHandler(zap.NewNop().Sugar(), fakeValidator, fakeService, fakeAuth)
	})

	Describe("HandleAuthenticate", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"username":"test","password":"pass"}`)
			req = httptest.NewRequest("POST", "/ethstore/authenticate", body)
			req.Header.Set("Content-Type", "application/json")
		})

		JustBeforeEach(func() {
			rh.HandleAuthenticate(w, req)
		})

		When("authentication succeeds", func() {
			It("should return a token", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(MatchJSON(`{"data":{"token":"test-token"}}`))
				Expect(fakeAuth.AuthenticateCallCount()).To(Equal(1))
				Expect(fakeAuth.AuthenticateArgsForCall(0)).To(Equal(core.AuthMessage{Username: "test", Password: "pass"}))
				argReq, _ := fakeValidator.DecodeJSONPayloadArgsForCall(0)
				Expect(argReq).To(Equal(req))
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(fakeErr.Error()))
				Expect(fakeAuth.AuthenticateCallCount()).To(Equal(0))
			})
		})

		When("authentication fails due to incorrect credentials", func() {
			BeforeEach(func() {
				fakeAuth.AuthenticateReturns("", core.ErrIncorrectPassword)
			})

			It("should return 401 Unauthorized", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(w.Body.String()).To(ContainSubstring(core.ErrIncorrectPassword.Error()))
			})
		})

		When("authentication fails unexpectedly", func() {
			BeforeEach(func() {
				fakeAuth.AuthenticateReturns("", fakeErr)
			})

			It("should return 500 without the cause", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandleGetRecords", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/ethstore/records", nil)
		})

		JustBeforeEach(func() {
			rh.HandleGetRecords(w, req)
		})

		When("records are stored", func() {
			BeforeEach(func() {
				var record model.Record
				Expect(json.Unmarshal([]byte(recordBody), &record)).To(Succeed())
				fakeService.GetAllRecordsReturns([]model.Record{record}, nil)
			})

			It("should return them in external form", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(MatchJSON(fmt.Sprintf(`{"data":[%s]}`, recordBody)))
			})
		})

		When("nothing is stored", func() {
			BeforeEach(func() {
				fakeService.GetAllRecordsReturns([]model.Record{}, nil)
			})

			It("should return an empty list", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(MatchJSON(`{"data":[]}`))
			})
		})

		When("the service fails", func() {
			BeforeEach(func() {
				fakeService.GetAllRecordsReturns(nil, fmt.Errorf("%w: %w", repository.ErrStorage, fakeErr))
			})

			It("should return 500 Internal Server Error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandlePutRecord", func() {
		var body string

		BeforeEach(func() {
			body = recordBody
			fakeService.SaveRecordReturns(1, nil)
		})

		JustBeforeEach(func() {
			req = httptest.NewRequest("PUT", "/ethstore/records", strings.NewReader(body))
			req.Header.Set("Authorization", "Bearer "+testToken)
			rh.HandlePutRecord(w, req)
		})

		When("the record is stored", func() {
			It("should report the affected rows", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(MatchJSON(`{"data":{"affected":1}}`))
				Expect(fakeAuth.AuthorizeArgsForCall(0)).To(Equal(testToken))

				Expect(fakeService.SaveRecordCallCount()).To(Equal(1))
				_, record := fakeService.SaveRecordArgsForCall(0)
				Expect(record.Address.Hex()).To(Equal("0x92be2f02c94d214f8d38ece700385471d9a66c0a"))
				Expect(record.BlockNumber).To(Equal(int64(1)))
			})
		})

		When("the token is rejected", func() {
			BeforeEach(func() {
				fakeAuth.AuthorizeReturns(fmt.Errorf("%w: expired", core.ErrUnauthorized))
			})

			It("should return 401 and not store anything", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeService.SaveRecordCallCount()).To(BeZero())
			})
		})

		When("the amount overflows", func() {
			BeforeEach(func() {
				body = strings.Replace(recordBody,
					"9999999999999999999999999999999999999999999999",
					"115792089237316195423570985008687907853269984665640564039457584007913129639936", 1)
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(primitives.ErrOverflow.Error()))
				Expect(fakeService.SaveRecordCallCount()).To(BeZero())
			})
		})

		When("the service rejects the record", func() {
			BeforeEach(func() {
				fakeService.SaveRecordReturns(0, fmt.Errorf("%w: block_number", core.ErrInvalidRecord))
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})
		})

		When("storage fails", func() {
			BeforeEach(func() {
				fakeService.SaveRecordReturns(0, fmt.Errorf("%w: %w", repository.ErrStorage, fakeErr))
			})

			It("should return 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandlePutRecord without a token", func() {
		It("should return 401", func() {
			req = httptest.NewRequest("PUT", "/ethstore/records", strings.NewReader(recordBody))
			rh.HandlePutRecord(w, req)
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(fakeAuth.AuthorizeCallCount()).To(BeZero())
		})
	})

	Describe("Register", func() {
		It("should route every endpoint", func() {
			fakeService.GetAllRecordsReturns([]model.Record{}, nil)
			mux := http.NewServeMux()
			rh.Register(mux)

			req = httptest.NewRequest("GET", "/ethstore/records", nil)
			mux.ServeHTTP(w, req)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(fakeService.GetAllRecordsCallCount()).To(Equal(1))
		})
	})
})
