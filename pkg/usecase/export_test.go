package usecase

var (
	PatchSiteConfig     = patchSiteConfig
	RenderProxyWorker   = renderProxyWorker
	RenderWorkflow      = renderWorkflow
	CreateOrUpdateTable = createOrUpdateTable
	SleepContext        = sleepContext
)
