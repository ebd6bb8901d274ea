package server

// Данный сервер объединяет специфичные HTTP сервера, отвечающие за обработку
// конкретных сущностей. Сейчас он один: PremiumServer.
type Server struct {
	PremiumServer
}

func NewServer(
	premiumServer PremiumServer,
) Server {
	return Server{
		PremiumServer: premiumServer,
	}
}
