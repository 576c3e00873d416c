package capsmod

// obsoleteOption is a capability key removed outright when paired with
// one of the listed values.
type obsoleteOption struct {
	key    string
	values []string
}

// obsoleteOptions are Applause-internal toggles the v6.1+ SDK no longer
// reads.
var obsoleteOptions = []obsoleteOption{
	{key: "isStrict", values: []string{"true", "false"}},
	{key: "isMobileNative", values: []string{"false"}},
}

// capability names an Appium capability and the driver scopes whose
// configuration files should have it prefixed. The sentinel scope "all"
// renames unconditionally; other entries are <driverType>_<driverScope>
// tokens matched against the lower-cased document.
type capability struct {
	name   string
	scopes []string
}

// capabilityTable is ordered. Order is the only protection against a key
// that is a prefix of a later key being renamed first and corrupting the
// longer match, so entries must not be re-sorted.
var capabilityTable = []capability{
	{name: "adbExecTimeout", scopes: []string{"all"}},
	{name: "adbPort", scopes: []string{"all"}},
	{name: "absoluteWebLocations", scopes: []string{"all"}},
	{name: "additionalWebviewBundleIds", scopes: []string{"all"}},
	{name: "allowDelayAdb", scopes: []string{"all"}},
	{name: "allowProvisioningDeviceRegistration", scopes: []string{"all"}},
	{name: "allowTestPackages", scopes: []string{"all"}},
	{name: "androidInstallTimeout", scopes: []string{"all"}},
	{name: "app", scopes: []string{"all"}},
	{name: "appActivity", scopes: []string{"all"}},
	{name: "appInstallStrategy", scopes: []string{"all"}},
	{name: "appPackage", scopes: []string{"all"}},
	{name: "appPushTimeout", scopes: []string{"all"}},
	{name: "appWaitActivity", scopes: []string{"all"}},
	{name: "appWaitDuration", scopes: []string{"all"}},
	{name: "appWaitForLaunch", scopes: []string{"all"}},
	{name: "appWaitPackage", scopes: []string{"all"}},
	{name: "autoAcceptAlerts", scopes: []string{"all"}},
	{name: "autoDismissAlerts", scopes: []string{"all"}},
	{name: "autoFillPasswords", scopes: []string{"all"}},
	{name: "autoGrantPermissions", scopes: []string{"all"}},
	{name: "autoLaunch", scopes: []string{"all"}},
	{name: "autoWebview", scopes: []string{"all"}},
	{name: "autoWebviewName", scopes: []string{"all"}},
	{name: "autoWebviewTimeout", scopes: []string{"all"}},
	{name: "automationName", scopes: []string{"all"}},
	{name: "avd", scopes: []string{"all"}},
	{name: "avdArgs", scopes: []string{"all"}},
	{name: "avdEnv", scopes: []string{"all"}},
	{name: "avdLaunchTimeout", scopes: []string{"all"}},
	{name: "avdReadyTimeout", scopes: []string{"all"}},
	{name: "buildToolsVersion", scopes: []string{"all"}},
	{name: "bundleId", scopes: []string{"all"}},
	{name: "calendarAccessAuthorized", scopes: []string{"all"}},
	{name: "calendarFormat", scopes: []string{"all"}},
	{name: "chromeLoggingPrefs", scopes: []string{"all"}},
	{name: "chromeOptions", scopes: []string{"all"}},
	{name: "chromedriverArgs", scopes: []string{"all"}},
	{name: "chromedriverChromeMappingFile", scopes: []string{"all"}},
	{name: "chromedriverDisableBuildCheck", scopes: []string{"all"}},
	{name: "chromedriverExecutable", scopes: []string{"all"}},
	{name: "chromedriverExecutableDir", scopes: []string{"all"}},
	{name: "chromedriverPort", scopes: []string{"all"}},
	{name: "chromedriverPorts", scopes: []string{"all"}},
	{name: "chromedriverUseSystemExecutable", scopes: []string{"all"}},
	{name: "clearDeviceLogsOnStart", scopes: []string{"all"}},
	{name: "clearSystemFiles", scopes: []string{"all"}},
	{name: "commandTimeouts", scopes: []string{"all"}},
	{name: "connectHardwareKeyboard", scopes: []string{"all"}},
	{name: "customSSLCert", scopes: []string{"all"}},
	{name: "derivedDataPath", scopes: []string{"all"}},
	{name: "deviceName", scopes: []string{"mobileweb_saucelabs", "mobilenative_all", "native_all"}},
	{name: "disableAutomaticScreenshots", scopes: []string{"all"}},
	{name: "disableSuppressAccessibilityService", scopes: []string{"all"}},
	{name: "disableWindowAnimation", scopes: []string{"all"}},
	{name: "dontStopAppOnReset", scopes: []string{"all"}},
	{name: "enableAsyncExecuteFromHttps", scopes: []string{"all"}},
	{name: "enablePerformanceLogging", scopes: []string{"all"}},
	{name: "enableWebviewDetailsCollection", scopes: []string{"all"}},
	{name: "enforceAppInstall", scopes: []string{"all"}},
	{name: "enforceFreshSimulatorCreation", scopes: []string{"all"}},
	{name: "ensureWebviewsHavePages", scopes: []string{"all"}},
	{name: "extractChromeAndroidPackageFromContextName", scopes: []string{"all"}},
	{name: "forceAppLaunch", scopes: []string{"all"}},
	{name: "forceSimulatorSoftwareKeyboardPresence", scopes: []string{"all"}},
	{name: "fullContextList", scopes: []string{"all"}},
	{name: "fullReset", scopes: []string{"all"}},
	{name: "gpsEnabled", scopes: []string{"all"}},
	{name: "hideKeyboard", scopes: []string{"all"}},
	{name: "ignoreHiddenApiPolicyError", scopes: []string{"all"}},
	{name: "includeDeviceCapsToSessionInfo", scopes: []string{"all"}},
	{name: "includeSafariInWebviews", scopes: []string{"all"}},
	{name: "injectedImageProperties", scopes: []string{"all"}},
	{name: "intentAction", scopes: []string{"all"}},
	{name: "intentCategory", scopes: []string{"all"}},
	{name: "intentFlags", scopes: []string{"all"}},
	{name: "iosInstallPause", scopes: []string{"all"}},
	{name: "iosSimulatorLogsPredicate", scopes: []string{"all"}},
	{name: "isHeadless", scopes: []string{"all"}},
	{name: "keepKeyChains", scopes: []string{"all"}},
	{name: "keyAlias", scopes: []string{"all"}},
	{name: "keyPassword", scopes: []string{"all"}},
	{name: "keychainPassword", scopes: []string{"all"}},
	{name: "keychainPath", scopes: []string{"all"}},
	{name: "keychainsExcludePatterns", scopes: []string{"all"}},
	{name: "keystorePassword", scopes: []string{"all"}},
	{name: "keystorePath", scopes: []string{"all"}},
	{name: "language", scopes: []string{"all"}},
	{name: "launchWithIDB", scopes: []string{"all"}},
	{name: "locale", scopes: []string{"all"}},
	{name: "localeScript", scopes: []string{"all"}},
	{name: "localizableStringsDir", scopes: []string{"all"}},
	{name: "logcatFilterSpecs", scopes: []string{"all"}},
	{name: "logcatFormat", scopes: []string{"all"}},
	{name: "maxTypingFrequency", scopes: []string{"all"}},
	{name: "mjpegScreenshotUrl", scopes: []string{"all"}},
	{name: "mjpegServerPort", scopes: []string{"all"}},
	{name: "mockLocationApp", scopes: []string{"all"}},
	{name: "nativeWebScreenshot", scopes: []string{"all"}},
	{name: "nativeWebTap", scopes: []string{"all"}},
	{name: "nativeWebTapStrict", scopes: []string{"all"}},
	{name: "networkSpeed", scopes: []string{"all"}},
	{name: "newCommandTimeout", scopes: []string{"all"}},
	{name: "noReset", scopes: []string{"all"}},
	{name: "noSign", scopes: []string{"all"}},
	{name: "optionalIntentArguments", scopes: []string{"all"}},
	{name: "orientation", scopes: []string{"all"}},
	{name: "otherApps", scopes: []string{"all"}},
	{name: "permissions", scopes: []string{"all"}},
	{name: "platformVersion", scopes: []string{"all"}},
	{name: "prebuiltWDAPath", scopes: []string{"all"}},
	{name: "printPageSourceOnFindFailure", scopes: []string{"all"}},
	{name: "processArguments", scopes: []string{"all"}},
	{name: "recreateChromeDriverSessions", scopes: []string{"all"}},
	{name: "reduceMotion", scopes: []string{"all"}},
	{name: "reduceTransparency", scopes: []string{"all"}},
	{name: "remoteAdbHost", scopes: []string{"all"}},
	{name: "remoteAppsCacheLimit", scopes: []string{"all"}},
	{name: "resetLocationService", scopes: []string{"all"}},
	{name: "resetOnSessionStartOnly", scopes: []string{"all"}},
	{name: "resultBundlePath", scopes: []string{"all"}},
	{name: "resultBundleVersion", scopes: []string{"all"}},
	{name: "safariAllowPopups", scopes: []string{"all"}},
	{name: "safariGarbageCollect", scopes: []string{"all"}},
	{name: "safariGlobalPreferences", scopes: []string{"all"}},
	{name: "safariIgnoreFraudWarning", scopes: []string{"all"}},
	{name: "safariIgnoreWebHostnames", scopes: []string{"all"}},
	{name: "safariInitialUrl", scopes: []string{"all"}},
	{name: "safariLogAllCommunication", scopes: []string{"all"}},
	{name: "safariLogAllCommunicationHexDump", scopes: []string{"all"}},
	{name: "safariOpenLinksInBackground", scopes: []string{"all"}},
	{name: "safariSocketChunkSize", scopes: []string{"all"}},
	{name: "safariWebInspectorMaxFrameLength", scopes: []string{"all"}},
	{name: "scaleFactor", scopes: []string{"all"}},
	{name: "screenshotQuality", scopes: []string{"all"}},
	{name: "shouldTerminateApp", scopes: []string{"all"}},
	{name: "shouldUseSingletonTestManager", scopes: []string{"all"}},
	{name: "showChromedriverLog", scopes: []string{"all"}},
	{name: "showIOSLog", scopes: []string{"all"}},
	{name: "showXcodeLog", scopes: []string{"all"}},
	{name: "shutdownOtherSimulators", scopes: []string{"all"}},
	{name: "simpleIsVisibleCheck", scopes: []string{"all"}},
	{name: "simulatorDevicesSetPath", scopes: []string{"all"}},
	{name: "simulatorPasteboardAutomaticSync", scopes: []string{"all"}},
	{name: "simulatorStartupTimeout", scopes: []string{"all"}},
	{name: "simulatorTracePointer", scopes: []string{"all"}},
	{name: "simulatorWindowCenter", scopes: []string{"all"}},
	{name: "skipDeviceInitialization", scopes: []string{"all"}},
	{name: "skipLogCapture", scopes: []string{"all"}},
	{name: "skipLogcatCapture", scopes: []string{"all"}},
	{name: "skipServerInstallation", scopes: []string{"all"}},
	{name: "skipUnlock", scopes: []string{"all"}},
	{name: "suppressKillServer", scopes: []string{"all"}},
	{name: "systemPort", scopes: []string{"all"}},
	{name: "timeZone", scopes: []string{"all"}},
	{name: "udid", scopes: []string{"all"}},
	{name: "uiautomator2ServerInstallTimeout", scopes: []string{"all"}},
	{name: "uiautomator2ServerLaunchTimeout", scopes: []string{"all"}},
	{name: "uiautomator2ServerReadTimeout", scopes: []string{"all"}},
	{name: "uninstallOtherPackages", scopes: []string{"all"}},
	{name: "unlockKey", scopes: []string{"all"}},
	{name: "unlockStrategy", scopes: []string{"all"}},
	{name: "unlockSuccessTimeout", scopes: []string{"all"}},
	{name: "unlockType", scopes: []string{"all"}},
	{name: "updatedWDABundleId", scopes: []string{"all"}},
	{name: "useJSONSource", scopes: []string{"all"}},
	{name: "useKeystore", scopes: []string{"all"}},
	{name: "useNativeCachingStrategy", scopes: []string{"all"}},
	{name: "useNewWDA", scopes: []string{"all"}},
	{name: "usePrebuiltWDA", scopes: []string{"all"}},
	{name: "usePreinstalledWDA", scopes: []string{"all"}},
	{name: "useSimpleBuildTest", scopes: []string{"all"}},
	{name: "useXctestrunFile", scopes: []string{"all"}},
	{name: "userProfile", scopes: []string{"all"}},
	{name: "waitForIdleTimeout", scopes: []string{"all"}},
	{name: "waitForQuiescence", scopes: []string{"all"}},
	{name: "wdaBaseUrl", scopes: []string{"all"}},
	{name: "wdaConnectionTimeout", scopes: []string{"all"}},
	{name: "wdaEventloopIdleDelay", scopes: []string{"all"}},
	{name: "wdaLaunchTimeout", scopes: []string{"all"}},
	{name: "wdaLocalPort", scopes: []string{"all"}},
	{name: "wdaStartupRetries", scopes: []string{"all"}},
	{name: "wdaStartupRetryInterval", scopes: []string{"all"}},
	{name: "webDriverAgentUrl", scopes: []string{"all"}},
	{name: "webkitResponseTimeout", scopes: []string{"all"}},
	{name: "webviewConnectRetries", scopes: []string{"all"}},
	{name: "webviewConnectTimeout", scopes: []string{"all"}},
	{name: "webviewDevtoolsPort", scopes: []string{"all"}},
	{name: "xcodeConfigFile", scopes: []string{"all"}},
	{name: "xcodeOrgId", scopes: []string{"all"}},
	{name: "xcodeSigningId", scopes: []string{"all"}},
	{name: "commandTimeout", scopes: []string{"all"}},
	{name: "deviceOrientation", scopes: []string{"all"}},
	{name: "idleTimeout", scopes: []string{"all"}},
}
