/*
   Copyright 2026 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package grpcx adapts gRPC status errors to the diaglog contracts: a
// status-derived error kind (grpc.<code>) for classification, and a
// structured field view of the status for transcripts.
package grpcx

import (
	"fmt"
	"strings"

	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/proto"

	"dirpx.dev/diaglog/apis"
	"dirpx.dev/diaglog/kind"
)

// Wrap annotates a gRPC status error with a kind and a field view.
//
// Nil errors, OK statuses and errors that carry no status come back
// unchanged. The wrapper unwraps to the original error, so errors.Is and
// status.FromError still work on the result.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	st, ok := gstatus.FromError(err)
	if !ok || st.Code() == gcodes.OK {
		return err
	}
	return &Error{err: err, st: st}
}

// Error decorates a gRPC status error with the diaglog contracts.
type Error struct {
	err error
	st  *gstatus.Status
}

func (e *Error) Error() string { return e.err.Error() }

func (e *Error) Unwrap() error { return e.err }

// Status returns the underlying gRPC status.
func (e *Error) Status() *gstatus.Status { return e.st }

// ErrorKind derives the kind from the status code, e.g. grpc.not_found or
// grpc.deadline_exceeded.
func (e *Error) ErrorKind() kind.Kind {
	k, err := kind.Parse("grpc." + codeSegment(e.st.Code()))
	if err != nil {
		return kind.MustParse("grpc.unknown")
	}
	return k
}

// Describe exposes the status as transcript fields: code and message, then
// one field per attached detail message, rendered as single-line prototext.
func (e *Error) Describe() []apis.Field {
	fields := []apis.Field{
		{Name: "code", Value: e.st.Code().String()},
		{Name: "message", Value: e.st.Message()},
	}
	for i, d := range e.st.Details() {
		f := apis.Field{Name: fmt.Sprintf("detail_%d", i), Value: d}
		if m, ok := d.(proto.Message); ok {
			f.Value = strings.TrimSpace(prototext.MarshalOptions{}.Format(m))
		}
		fields = append(fields, f)
	}
	return fields
}

// codeSegment lowercases a codes.Code name into a kind segment, e.g.
// DeadlineExceeded -> deadline_exceeded. Out-of-range codes print as
// "Code(N)" and collapse to "unknown".
func codeSegment(c gcodes.Code) string {
	name := c.String()
	if strings.HasPrefix(name, "Code(") {
		return "unknown"
	}
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
