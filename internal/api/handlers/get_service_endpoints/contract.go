package get_service_endpoints

// EndpointsProvider источник базовых адресов backend-сервисов
type EndpointsProvider interface {
	Endpoints() map[string]string
}
