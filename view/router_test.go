package view

import "testing"

func TestResolveMissingParams(t *testing.T) {
	cases := []struct {
		name   string
		target Screen
		want   string
	}{
		{"详情页缺帖子ID", Screen{Name: PostDetail}, Home},
		{"商家页缺商家ID", Screen{Name: MerchantDetail}, Home},
		{"会话详情缺会话ID", Screen{Name: ChatDetail}, Messages},
		{"未知视图", Screen{Name: "NOPE"}, Home},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Resolve(tc.target, Session{LoggedIn: true})
			if got.Name != tc.want {
				t.Errorf("Resolve = %s, want %s", got.Name, tc.want)
			}
		})
	}
}

func TestResolveAuth(t *testing.T) {
	// 未登录访问客服会话跳登录页
	got := Resolve(Screen{Name: SupportChat}, Session{})
	if got.Name != Login {
		t.Errorf("未登录客服会话 = %s, want LOGIN", got.Name)
	}

	// 普通用户进不了后台
	got = Resolve(Screen{Name: AdminDashboard}, Session{LoggedIn: true})
	if got.Name != Home {
		t.Errorf("非管理员后台 = %s, want HOME", got.Name)
	}

	got = Resolve(Screen{Name: AdminDashboard}, Session{LoggedIn: true, IsAdmin: true})
	if got.Name != AdminDashboard {
		t.Errorf("管理员后台 = %s, want ADMIN_DASHBOARD", got.Name)
	}

	// 带参数的合法跳转原样放行
	got = Resolve(Screen{Name: PostDetail, PostID: "p1"}, Session{})
	if got.Name != PostDetail || got.PostID != "p1" {
		t.Errorf("详情页 = %+v", got)
	}
}

func TestNavBarVisible(t *testing.T) {
	for _, name := range []string{Home, Explore, Messages, Profile} {
		if !NavBarVisible(name) {
			t.Errorf("%s 应显示导航栏", name)
		}
	}
	for _, name := range []string{Publish, PostDetail, Wallet, AdminDashboard} {
		if NavBarVisible(name) {
			t.Errorf("%s 不应显示导航栏", name)
		}
	}
}

func TestResolveBanner(t *testing.T) {
	got := ResolveBanner("金牌保洁服务 - 低至8折", "", "")
	if got.Name != Home {
		t.Errorf("无可跳转目标应回首页, got %+v", got)
	}

	got = ResolveBanner("金牌家政服务 - 低至8折", "m1", "")
	if got.Name != MerchantDetail || got.MerchantID != "m1" {
		t.Errorf("家政广告 = %+v", got)
	}

	got = ResolveBanner("暑期租房大促 - 免中介费", "", "p1")
	if got.Name != PostDetail || got.PostID != "p1" {
		t.Errorf("租房广告 = %+v", got)
	}
}
