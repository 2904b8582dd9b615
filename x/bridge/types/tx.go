package types

import (
	"context"
)

// MsgServer is the server API for the bridge Msg service.
type MsgServer interface {
	Lock(context.Context, *MsgLock) (*MsgLockResponse, error)
	Unlock(context.Context, *MsgUnlock) (*MsgUnlockResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

// MsgLockResponse reports the nonce assigned to the escrowed transfer.
type MsgLockResponse struct {
	Nonce uint64 `json:"nonce"`
}

type MsgUnlockResponse struct{}

type MsgUpdateParamsResponse struct{}
