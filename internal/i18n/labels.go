package i18n

// Key identifies a label.
type Key string

const (
	// navigation and hints
	Exit       Key = "exit"
	Settings   Key = "settings"
	Back       Key = "back"
	Select     Key = "select"
	MoveCursor Key = "move_cursor"
	Refresh    Key = "refresh"
	Save       Key = "save"
	Delete     Key = "delete"
	Add        Key = "add"
	Cancel     Key = "cancel"
	Confirm    Key = "confirm"
	Scroll     Key = "scroll"
	Open       Key = "open"
	Generate   Key = "generate"
	Reorder    Key = "reorder"
	SingleMode Key = "single_mode"
	AddToBP    Key = "add_to_blueprint"

	// screens
	Login          Key = "login"
	Region         Key = "region"
	Service        Key = "service"
	Blueprint      Key = "blueprint"
	Preview        Key = "preview"
	NewBlueprint   Key = "new_blueprint"
	EnterBPName    Key = "enter_blueprint_name"
	PressAToAdd    Key = "press_a_to_add"
	Resources      Key = "resources"
	LanguageLabel  Key = "language"
	LanguageSetter Key = "language_setting"

	// status
	Loading            Key = "loading"
	LoadingMsg         Key = "loading_msg"
	ProviderWaiting    Key = "provider_waiting"
	RefreshComplete    Key = "refresh_complete"
	SaveComplete       Key = "save_complete"
	SaveFailed         Key = "save_failed"
	ResourceAdded      Key = "resource_added"
	ResourceDeleted    Key = "resource_deleted"
	BlueprintSaved     Key = "blueprint_saved"
	BlueprintDeleted   Key = "blueprint_deleted"
	BlueprintSaveFail  Key = "blueprint_save_failed"
	BlueprintLoadFail  Key = "blueprint_load_failed"
	BlueprintNotFound  Key = "blueprint_not_found"
	NameRequired       Key = "name_required"
	SettingsSaved      Key = "settings_saved"
	QueryFailed        Key = "query_failed"
	NoResources        Key = "no_resources"
	LoginVerified      Key = "login_verified"
	LoginRequired      Key = "login_required"
	LoginChecking      Key = "login_checking"
	ConfigureHint      Key = "configure_hint"
	AuthCredentials    Key = "auth_credentials_failed"
	AuthNetwork        Key = "auth_network_error"
	AuthUnknown        Key = "auth_unknown_error"
	LoadingList        Key = "loading_list"
	RefreshingList     Key = "refreshing_list"
	LoadingDetail      Key = "loading_detail"
	LoadingBPResources Key = "loading_blueprint_resources"
	TaskBusy           Key = "task_busy"

	// network steps
	VpcBasicInfo   Key = "vpc_basic_info"
	Subnets        Key = "subnets"
	InternetGW     Key = "internet_gateway"
	NatGW          Key = "nat_gateway"
	RouteTables    Key = "route_tables"
	ElasticIP      Key = "elastic_ip"
	DNSSettings    Key = "dns_settings"
	Completing     Key = "completing"
	DocumentTitle  Key = "document_title"
	TableOfContent Key = "toc"

	// markdown tables
	Item               Key = "item"
	Value              Key = "value"
	MdName             Key = "md_name"
	MdState            Key = "md_state"
	MdTag              Key = "md_tag"
	MdKey              Key = "md_key"
	MdDescription      Key = "md_description"
	MdDNSSupport       Key = "md_dns_support"
	MdDNSHostnames     Key = "md_dns_hostnames"
	MdAttachedVpc      Key = "md_attached_vpc"
	MdAvailabilityMode Key = "md_availability_mode"
	MdZonal            Key = "md_zonal"
	MdRegional         Key = "md_regional"
	MdEnabled          Key = "md_enabled"
	MdDisabled         Key = "md_disabled"
	MdSubnet           Key = "md_subnet"
	MdConnectivityType Key = "md_connectivity_type"
	MdPublic           Key = "md_public"
	MdPrivate          Key = "md_private"
	MdEIPAllocationID  Key = "md_eip_allocation_id"
	MdDestination      Key = "md_destination"
	MdTarget           Key = "md_target"
	MdAssociatedSubnet Key = "md_associated_subnets"
	MdMainTable        Key = "md_main_table"
	MdInboundRules     Key = "md_inbound_rules"
	MdOutboundRules    Key = "md_outbound_rules"
	MdProtocol         Key = "md_protocol"
	MdPortRange        Key = "md_port_range"
	MdSource           Key = "md_source"
	MdDNSName          Key = "md_dns_name"
	MdType             Key = "md_type"
	MdIPAddressType    Key = "md_ip_address_type"
	MdPort             Key = "md_port"
	MdDefaultAction    Key = "md_default_action"
	MdListeners        Key = "md_listeners"
	MdTargetGroups     Key = "md_target_groups"
	MdInstanceType     Key = "md_instance_type"
	MdPlatform         Key = "md_platform"
	MdArchitecture     Key = "md_architecture"
	MdKeyPair          Key = "md_key_pair"
	MdAZ               Key = "md_availability_zone"
	MdAZs              Key = "md_availability_zones"
	MdPrivateIP        Key = "md_private_ip"
	MdPublicIP         Key = "md_public_ip"
	MdSecurityGroups   Key = "md_security_groups"
	MdEBSOptimized     Key = "md_ebs_optimized"
	MdMonitoring       Key = "md_monitoring"
	MdIAMRole          Key = "md_iam_role"
	MdAttachedPolicies Key = "md_attached_policies"
	MdInlinePolicies   Key = "md_inline_policies"
	MdTrustPolicy      Key = "md_trust_policy"
	MdLaunchTime       Key = "md_launch_time"
	MdStorage          Key = "md_storage"
	MdDevice           Key = "md_device"
	MdSize             Key = "md_size"
	MdEncrypted        Key = "md_encrypted"
	MdDeleteOnTerm     Key = "md_delete_on_termination"
	MdUserData         Key = "md_user_data"
	MdTagMutability    Key = "md_tag_mutability"
	MdEncryption       Key = "md_encryption"
	MdImageCount       Key = "md_image_count"
	MdCreatedAt        Key = "md_created_at"
	MdScheme           Key = "md_scheme"
	MdTargetType       Key = "md_target_type"
	MdHealthCheck      Key = "md_health_check"
	MdHealthy          Key = "md_healthy"
	MdUnhealthy        Key = "md_unhealthy"
	MdTargets          Key = "md_targets"
	MdYes              Key = "md_yes"
	MdNo               Key = "md_no"

	AsgLaunchTemplate    Key = "asg_launch_template"
	AsgLaunchConfig      Key = "asg_launch_configuration"
	AsgMinSize           Key = "asg_min_size"
	AsgMaxSize           Key = "asg_max_size"
	AsgDesired           Key = "asg_desired_capacity"
	AsgDefaultCooldown   Key = "asg_default_cooldown"
	AsgHealthCheckType   Key = "asg_health_check_type"
	AsgHealthCheckGrace  Key = "asg_health_check_grace_period"
	AsgInstances         Key = "asg_instances"
	AsgInstanceID        Key = "asg_instance_id"
	AsgScalingPolicies   Key = "asg_scaling_policies"
	AsgAdjustmentType    Key = "asg_adjustment_type"
	AsgAdjustmentValue   Key = "asg_adjustment_value"
	AsgCooldown          Key = "asg_cooldown"
	AsgTags              Key = "asg_tags"
	KindEc2Label         Key = "kind_ec2"
	KindNetworkLabel     Key = "kind_network"
	KindSGLabel          Key = "kind_security_group"
	KindLBLabel          Key = "kind_load_balancer"
	KindEcrLabel         Key = "kind_ecr"
	KindAsgLabel         Key = "kind_asg"
	NoItemsForKindSuffix Key = "no_items"
)

// labels maps each key to {English, Korean}.
var labels = map[Key][2]string{
	Exit:       {"Exit", "종료"},
	Settings:   {"Settings", "설정"},
	Back:       {"Back", "뒤로"},
	Select:     {"Select", "선택"},
	MoveCursor: {"Move", "이동"},
	Refresh:    {"Refresh", "새로고침"},
	Save:       {"Save", "저장"},
	Delete:     {"Delete", "삭제"},
	Add:        {"Add", "추가"},
	Cancel:     {"Cancel", "취소"},
	Confirm:    {"Confirm", "확인"},
	Scroll:     {"Scroll", "스크롤"},
	Open:       {"Open", "열기"},
	Generate:   {"Generate", "생성"},
	Reorder:    {"Reorder", "순서변경"},
	SingleMode: {"Single Mode", "단일 모드"},
	AddToBP:    {"Add to Blueprint", "블루프린터에 추가"},

	Login:          {"Login", "로그인"},
	Region:         {"Region", "리전"},
	Service:        {"Service", "서비스"},
	Blueprint:      {"Blueprint", "블루프린터"},
	Preview:        {"Preview", "미리보기"},
	NewBlueprint:   {"+ New Blueprint", "+ 새 블루프린터"},
	EnterBPName:    {"Enter blueprint name:", "블루프린터 이름을 입력하세요:"},
	PressAToAdd:    {"Press 'a' to add resources.", "'a' 키를 눌러 리소스를 추가하세요."},
	Resources:      {"resources", "리소스"},
	LanguageLabel:  {"Language", "언어"},
	LanguageSetter: {"Language Setting", "언어 설정"},

	Loading:            {"Loading", "로딩"},
	LoadingMsg:         {"Loading...", "로딩 중..."},
	ProviderWaiting:    {"Waiting for AWS response.", "AWS 응답 대기 중입니다."},
	RefreshComplete:    {"Refresh complete", "새로고침 완료"},
	SaveComplete:       {"Save complete", "저장 완료"},
	SaveFailed:         {"Save failed", "저장 실패"},
	ResourceAdded:      {"Resource added", "리소스 추가 완료"},
	ResourceDeleted:    {"Resource deleted", "리소스 삭제 완료"},
	BlueprintSaved:     {"Blueprint saved", "블루프린터 저장 완료"},
	BlueprintDeleted:   {"Blueprint deleted", "블루프린터 삭제 완료"},
	BlueprintSaveFail:  {"Blueprint save failed", "블루프린터 저장 실패"},
	BlueprintLoadFail:  {"Blueprint load failed", "블루프린터 불러오기 실패"},
	BlueprintNotFound:  {"Blueprint no longer exists", "블루프린터가 존재하지 않습니다"},
	NameRequired:       {"Name is required", "이름을 입력하세요"},
	SettingsSaved:      {"Settings saved", "설정 저장 완료"},
	QueryFailed:        {"Query failed", "조회 실패"},
	NoResources:        {"No resources", "리소스가 없습니다"},
	LoginVerified:      {"✓ AWS login verified", "✓ AWS 로그인 확인됨"},
	LoginRequired:      {"✗ AWS login required", "✗ AWS 로그인 필요"},
	LoginChecking:      {"Checking AWS login...", "AWS 로그인 확인 중..."},
	ConfigureHint:      {"Run 'aws configure' or 'aws sso login', then press r.", "aws configure 또는 aws sso login 실행 후 r 키를 누르세요."},
	AuthCredentials:    {"AWS login required: failed to load credentials.", "AWS 로그인 필요: 자격 증명을 불러오지 못했습니다."},
	AuthNetwork:        {"AWS credential check failed: please verify network connectivity.", "AWS 자격 증명 확인 실패: 네트워크 연결을 확인하세요."},
	AuthUnknown:        {"AWS credential check failed: unknown error occurred.", "AWS 자격 증명 확인 실패: 알 수 없는 오류가 발생했습니다."},
	LoadingList:        {"Loading list", "목록 로딩 중"},
	RefreshingList:     {"Refreshing list", "목록 새로고침 중"},
	LoadingDetail:      {"Loading details", "상세 정보 로딩 중"},
	LoadingBPResources: {"Loading Blueprint resources", "블루프린터 리소스 로딩 중"},
	TaskBusy:           {"Another load is still running", "다른 작업이 진행 중입니다"},

	VpcBasicInfo:   {"VPC Basic Info", "VPC 기본 정보"},
	Subnets:        {"Subnets", "서브넷"},
	InternetGW:     {"Internet Gateway", "인터넷 게이트웨이"},
	NatGW:          {"NAT Gateway", "NAT 게이트웨이"},
	RouteTables:    {"Route Tables", "라우팅 테이블"},
	ElasticIP:      {"Elastic IP", "탄력적 IP"},
	DNSSettings:    {"DNS Settings", "DNS 설정"},
	Completing:     {"Completing", "완료 중"},
	DocumentTitle:  {"AWS Resource Documentation", "AWS 리소스 문서"},
	TableOfContent: {"📑 Table of Contents", "📑 목차"},

	Item:               {"Item", "항목"},
	Value:              {"Value", "값"},
	MdName:             {"Name", "이름"},
	MdState:            {"State", "상태"},
	MdTag:              {"Tag", "태그"},
	MdKey:              {"Key", "키"},
	MdDescription:      {"Description", "설명"},
	MdDNSSupport:       {"DNS Support", "DNS 확인"},
	MdDNSHostnames:     {"DNS Hostnames", "DNS 호스트 이름"},
	MdAttachedVpc:      {"Attached VPC", "연결된 VPC"},
	MdAvailabilityMode: {"Availability Mode", "가용성 모드"},
	MdZonal:            {"Zonal", "영역"},
	MdRegional:         {"Regional", "리전"},
	MdEnabled:          {"Enabled", "활성화"},
	MdDisabled:         {"Disabled", "비활성화"},
	MdSubnet:           {"Subnet", "서브넷"},
	MdConnectivityType: {"Connectivity Type", "연결 유형"},
	MdPublic:           {"Public", "퍼블릭"},
	MdPrivate:          {"Private", "프라이빗"},
	MdEIPAllocationID:  {"Elastic IP Allocation ID", "탄력적 IP 할당 ID"},
	MdDestination:      {"Destination", "대상"},
	MdTarget:           {"Target", "타겟"},
	MdAssociatedSubnet: {"Associated Subnets:", "연결된 서브넷:"},
	MdMainTable:        {"Main", "기본"},
	MdInboundRules:     {"Inbound Rules", "인바운드 규칙"},
	MdOutboundRules:    {"Outbound Rules", "아웃바운드 규칙"},
	MdProtocol:         {"Protocol", "프로토콜"},
	MdPortRange:        {"Port Range", "포트 범위"},
	MdSource:           {"Source", "소스"},
	MdDNSName:          {"DNS Name", "DNS 이름"},
	MdType:             {"Type", "유형"},
	MdIPAddressType:    {"IP Address Type", "IP 주소 유형"},
	MdPort:             {"Port", "포트"},
	MdDefaultAction:    {"Default Action", "기본 작업"},
	MdListeners:        {"Listeners", "리스너"},
	MdTargetGroups:     {"Target Groups", "대상 그룹"},
	MdInstanceType:     {"Instance Type", "인스턴스 유형"},
	MdPlatform:         {"Platform", "플랫폼"},
	MdArchitecture:     {"Architecture", "아키텍처"},
	MdKeyPair:          {"Key Pair", "키 페어"},
	MdAZ:               {"Availability Zone", "가용 영역"},
	MdAZs:              {"Availability Zones", "가용 영역"},
	MdPrivateIP:        {"Private IP", "프라이빗 IP"},
	MdPublicIP:         {"Public IP", "퍼블릭 IP"},
	MdSecurityGroups:   {"Security Groups", "보안 그룹"},
	MdEBSOptimized:     {"EBS Optimized", "EBS 최적화"},
	MdMonitoring:       {"Monitoring", "모니터링"},
	MdIAMRole:          {"IAM Role", "IAM 역할"},
	MdAttachedPolicies: {"Attached Policies", "연결된 정책"},
	MdInlinePolicies:   {"Inline Policies", "인라인 정책"},
	MdTrustPolicy:      {"Trust Policy", "신뢰 정책"},
	MdLaunchTime:       {"Launch Time", "시작 시간"},
	MdStorage:          {"Storage", "스토리지"},
	MdDevice:           {"Device", "디바이스"},
	MdSize:             {"Size", "크기"},
	MdEncrypted:        {"Encrypted", "암호화"},
	MdDeleteOnTerm:     {"Delete on Termination", "종료 시 삭제"},
	MdUserData:         {"User Data", "사용자 데이터"},
	MdTagMutability:    {"Tag Mutability", "태그 변경 가능성"},
	MdEncryption:       {"Encryption", "암호화"},
	MdImageCount:       {"Image Count", "이미지 수"},
	MdCreatedAt:        {"Created At", "생성일"},
	MdScheme:           {"Scheme", "체계"},
	MdTargetType:       {"Target Type", "대상 유형"},
	MdHealthCheck:      {"Health Check", "상태 검사"},
	MdHealthy:          {"Healthy", "정상"},
	MdUnhealthy:        {"Unhealthy", "비정상"},
	MdTargets:          {"Targets:", "대상:"},
	MdYes:              {"Yes", "예"},
	MdNo:               {"No", "아니오"},

	AsgLaunchTemplate:   {"Launch Template", "시작 템플릿"},
	AsgLaunchConfig:     {"Launch Configuration", "시작 구성"},
	AsgMinSize:          {"Min Size", "최소 크기"},
	AsgMaxSize:          {"Max Size", "최대 크기"},
	AsgDesired:          {"Desired Capacity", "원하는 용량"},
	AsgDefaultCooldown:  {"Default Cooldown", "기본 쿨다운"},
	AsgHealthCheckType:  {"Health Check Type", "헬스 체크 유형"},
	AsgHealthCheckGrace: {"Health Check Grace Period", "헬스 체크 유예 기간"},
	AsgInstances:        {"Instances", "인스턴스"},
	AsgInstanceID:       {"Instance ID", "인스턴스 ID"},
	AsgScalingPolicies:  {"Scaling Policies", "조정 정책"},
	AsgAdjustmentType:   {"Adjustment Type", "조정 유형"},
	AsgAdjustmentValue:  {"Adjustment Value", "조정 값"},
	AsgCooldown:         {"Cooldown", "쿨다운"},
	AsgTags:             {"Tags", "태그"},

	KindEc2Label:         {"EC2 Instance", "EC2 인스턴스"},
	KindNetworkLabel:     {"Network", "Network"},
	KindSGLabel:          {"Security Group", "Security Group"},
	KindLBLabel:          {"Load Balancer", "Load Balancer"},
	KindEcrLabel:         {"ECR Repository", "ECR 레포지토리"},
	KindAsgLabel:         {"Auto Scaling Group", "Auto Scaling Group"},
	NoItemsForKindSuffix: {"No items found.", "항목이 없습니다."},
}
