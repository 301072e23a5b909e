package service

import (
	"github.com/Primesh-FL/FormSG/core/config"
	"github.com/Primesh-FL/FormSG/internal/store"
)

type Services struct {
	stores    *store.Stores
	txRunner  TxRunner
	workOSCfg config.WorkOSConfig
	sms       SmsDeliveryService
}

func NewServices(stores *store.Stores, txRunner TxRunner, workOSCfg config.WorkOSConfig, sms SmsDeliveryService) *Services {
	return &Services{
		stores:    stores,
		txRunner:  txRunner,
		workOSCfg: workOSCfg,
		sms:       sms,
	}
}

func (s *Services) Workspaces() WorkspaceService {
	return NewWorkspaceService(s.stores.Workspaces(), s.txRunner)
}

func (s *Services) Forms() FormService {
	return NewFormService(s.stores.Forms(), s.stores.Submissions())
}

func (s *Services) Auth() AuthService {
	return NewAuthService(s.stores.Users(), s.stores.Sessions(), NewWorkOSProvider(s.workOSCfg))
}

func (s *Services) SmsDelivery() SmsDeliveryService {
	return s.sms
}
