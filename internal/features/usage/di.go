package usage

var limitRepository = &LimitRepository{}
var usageRepository = &UsageRepository{}

var usageService = &UsageService{
	limitRepository,
	usageRepository,
	NewUsageLimiter(limitRepository, usageRepository),
}

var usageController = &UsageController{
	usageService,
}

func GetUsageService() *UsageService {
	return usageService
}

func GetUsageController() *UsageController {
	return usageController
}
