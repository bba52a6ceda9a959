// Package api exposes the hofkit service over HTTP.
//
//	POST /v1/zip          {"operands": [1,1,3,0,4], "operations": ["add","multiply","add","divide"]}
//	POST /v1/evaluate     same body, returns every partial result
//	POST /v1/longest      {"values": ["Ok","Way","too"], "tie_break": "later"}
//	POST /v1/select       {"values": [3,1,3], "mode": "least"}
//	POST /v1/capitalized  {"values": ["Alpha","beta"]}
//	POST /v1/flatten      {"entries": {"a": 1}, "sorted": true}
//	GET  /v1/operations
package api
