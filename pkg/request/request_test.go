package request

import (
	"errors"
	"testing"

	"github.com/AlexanderGrooff/kobe-client/pkg/kobe"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/testing/protocmp"
)

func sampleInventory() *kobe.Inventory {
	host := NewHost("vagrant", "10.0.0.5", 22, "op")
	host.Vars["ansible_connection"] = "ssh"
	return NewInventory([]*kobe.Host{host}, nil, map[string]string{"deprecation_warnings": "False"})
}

func TestBuildAdhoc(t *testing.T) {
	inv := sampleInventory()
	req := BuildAdhoc(inv, "all", "shell", "echo hi")

	want := &kobe.RunAdhocRequest{
		Inventory: sampleInventory(),
		Pattern:   "all",
		Module:    "shell",
		Param:     "echo hi",
	}
	if diff := cmp.Diff(want, req, protocmp.Transform()); diff != "" {
		t.Errorf("BuildAdhoc() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(inv, req.Inventory, protocmp.Transform()); diff != "" {
		t.Errorf("inventory changed during construction (-in +out):\n%s", diff)
	}
}

func TestBuildPlaybook(t *testing.T) {
	inv := sampleInventory()
	body := "- hosts: all\n  tasks:\n    - debug: msg=hello\n"
	req := BuildPlaybook(inv, "KobeProject", "first", "hello", body)

	assert.Equal(t, "KobeProject", req.Project)
	assert.Equal(t, "first", req.Playbook)
	assert.Equal(t, "hello", req.Tag)
	assert.Equal(t, body, req.Content)
	if diff := cmp.Diff(inv, req.Inventory, protocmp.Transform()); diff != "" {
		t.Errorf("inventory changed during construction (-in +out):\n%s", diff)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     any
		wantErr bool
		field   string
	}{
		{
			name: "valid adhoc",
			req:  BuildAdhoc(sampleInventory(), "all", "shell", "uptime"),
		},
		{
			name: "valid playbook with group only",
			req: BuildPlaybook(
				NewInventory(nil, []*kobe.Group{{Name: "web", Hosts: []string{"a"}}}, nil),
				"proj", "site", "", "- hosts: web"),
		},
		{
			name:    "empty inventory",
			req:     BuildAdhoc(NewInventory(nil, nil, nil), "all", "shell", "uptime"),
			wantErr: true,
			field:   "hosts_or_groups",
		},
		{
			name:    "missing inventory",
			req:     BuildAdhoc(nil, "all", "shell", "uptime"),
			wantErr: true,
			field:   "Inventory",
		},
		{
			name:    "missing module",
			req:     BuildAdhoc(sampleInventory(), "all", "", "uptime"),
			wantErr: true,
			field:   "Module",
		},
		{
			name:    "host without ip",
			req:     BuildAdhoc(NewInventory([]*kobe.Host{NewHost("x", "", 22, "op")}, nil, nil), "all", "shell", "uptime"),
			wantErr: true,
			field:   "Ip",
		},
		{
			name:    "host with port zero",
			req:     BuildAdhoc(NewInventory([]*kobe.Host{NewHost("x", "10.0.0.5", 0, "op")}, nil, nil), "all", "shell", "uptime"),
			wantErr: true,
			field:   "Port",
		},
		{
			name:    "missing playbook name",
			req:     BuildPlaybook(sampleInventory(), "proj", "", "", "body"),
			wantErr: true,
			field:   "Playbook",
		},
		{
			name:    "nil adhoc request",
			req:     (*kobe.RunAdhocRequest)(nil),
			wantErr: true,
			field:   "request",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.req)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
			assert.Contains(t, verr.Error(), tt.field)
		})
	}
}

func TestValidateUnsupportedType(t *testing.T) {
	err := Validate("not a request")
	require.Error(t, err)
	var verr *ValidationError
	assert.False(t, errors.As(err, &verr))
}
