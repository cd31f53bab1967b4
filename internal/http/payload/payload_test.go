package payload_test

import (
	"net/http/httptest"
	"strings"

	"ethstore/internal/core"
	"ethstore/internal/http/payload"
	"ethstore/internal/model"
	"ethstore/pkg/primitives"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("DecodeValidator", func() {
	var dv payload.DecodeValidator

	Describe("AuthRequest", func() {
		It("should decode and convert a complete request", func() {
			req := httptest.NewRequest("POST", "/", strings.NewReader(`{"username":"operator","password":"pass"}`))
			var auth payload.AuthRequest
			Expect(dv.DecodeJSONPayload(req, &auth)).To(Succeed())
			Expect(auth.ToMessage()).To(Equal(core.AuthMessage{Username: "operator", Password: "pass"}))
		})

		It("should reject a missing password", func() {
			req := httptest.NewRequest("POST", "/", strings.NewReader(`{"username":"operator"}`))
			var auth payload.AuthRequest
			err := dv.DecodeJSONPayload(req, &auth)
			Expect(err).To(MatchError(payload.ErrInvalidPayload))
			Expect(err).To(MatchError(ContainSubstring("password")))
		})

		It("should reject unknown fields", func() {
			req := httptest.NewRequest("POST", "/", strings.NewReader(`{"username":"a","password":"b","role":"admin"}`))
			var auth payload.AuthRequest
			Expect(dv.DecodeJSONPayload(req, &auth)).To(MatchError(payload.ErrInvalidPayload))
		})
	})

	Describe("Record", func() {
		const body = `{
			"address": "0x92be2f02c94d214f8d38ece700385471d9a66c0a",
			"u256": "9999999999999999999999999999999999999999999999",
			"block_number": 1,
			"tx_hash": "0xb44c4e99de65f6a5f4a2162a76241cf858c09ff218f3023a3ac03acc17fea885",
			"optional_address": null,
			"optional_u256": null
		}`

		It("should decode the external form", func() {
			req := httptest.NewRequest("PUT", "/", strings.NewReader(body))
			var record model.Record
			Expect(dv.DecodeJSONPayload(req, &record)).To(Succeed())
			Expect(record.BlockNumber).To(Equal(int64(1)))
			Expect(record.U256.String()).To(Equal("9999999999999999999999999999999999999999999999"))
			Expect(record.OptionalAddress).To(BeNil())
		})

		It("should surface codec errors", func() {
			bad := strings.Replace(body, "0x92be2f02c94d214f8d38ece700385471d9a66c0a", "0x92be", 1)
			req := httptest.NewRequest("PUT", "/", strings.NewReader(bad))
			var record model.Record
			err := dv.DecodeJSONPayload(req, &record)
			Expect(err).To(MatchError(payload.ErrInvalidPayload))
			Expect(err).To(MatchError(primitives.ErrInvalidHex))
		})

		DescribeTable("should reject bodies without the required columns",
			func(body string) {
				req := httptest.NewRequest("PUT", "/", strings.NewReader(body))
				var record model.Record
				err := dv.DecodeJSONPayload(req, &record)
				Expect(err).To(MatchError(payload.ErrInvalidPayload))
				Expect(err).To(MatchError(model.ErrMissingField))
			},
			Entry("empty object", `{}`),
			Entry("explicit nulls", `{"address":null,"u256":null,"block_number":1,"tx_hash":null,"optional_address":null,"optional_u256":null}`),
		)

		It("should reject exponent notation amounts", func() {
			bad := strings.Replace(body, `"9999999999999999999999999999999999999999999999"`, `"1e50000000"`, 1)
			req := httptest.NewRequest("PUT", "/", strings.NewReader(bad))
			var record model.Record
			err := dv.DecodeJSONPayload(req, &record)
			Expect(err).To(MatchError(primitives.ErrInvalidDecimal))
			Expect(len(err.Error())).To(BeNumerically("<", 200))
		})

		It("should run record validation", func() {
			bad := strings.Replace(body, `"block_number": 1`, `"block_number": -1`, 1)
			req := httptest.NewRequest("PUT", "/", strings.NewReader(bad))
			var record model.Record
			Expect(dv.DecodeJSONPayload(req, &record)).To(MatchError(ContainSubstring("block_number")))
		})
	})
})
